package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/barristerapp/barrister/internal/cards"
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// InsertCard inserts a card if its deterministic ID isn't already
// present. Returns true when a new row was created. Existing cards are
// left untouched so re-import never clobbers review state.
func (s *Store) InsertCard(ctx context.Context, q dbtx, c *cards.Card) (bool, error) {
	tags, err := marshalList(c.Tags)
	if err != nil {
		return false, err
	}

	res, err := q.ExecContext(ctx, `
		INSERT OR IGNORE INTO cards
		(id, concept_id, card_type, subject, topic, question, answer, difficulty, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ConceptID, string(c.Type), string(c.Subject), c.Topic,
		c.Question, c.Answer, int(c.Difficulty), tags,
	)
	if err != nil {
		return false, fmt.Errorf("insert card %s: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// GetCard returns the card with the given ID or ErrNotFound.
func (s *Store) GetCard(ctx context.Context, id string) (*cards.Card, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, concept_id, card_type, subject, topic, question, answer, difficulty, tags
		FROM cards WHERE id = ?`, id)
	c, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// ListCards returns cards, optionally filtered by subject
// (SubjectUnknown = all), ordered by ID.
func (s *Store) ListCards(ctx context.Context, subject conceptgraph.Subject) ([]cards.Card, error) {
	query := `
		SELECT id, concept_id, card_type, subject, topic, question, answer, difficulty, tags
		FROM cards`
	var args []any
	if subject != conceptgraph.SubjectUnknown {
		query += ` WHERE subject = ?`
		args = append(args, string(subject))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var out []cards.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListCardsByConcept returns the cards derived from one concept.
func (s *Store) ListCardsByConcept(ctx context.Context, conceptID string) ([]cards.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, concept_id, card_type, subject, topic, question, answer, difficulty, tags
		FROM cards WHERE concept_id = ? ORDER BY id`, conceptID)
	if err != nil {
		return nil, fmt.Errorf("list cards for concept %s: %w", conceptID, err)
	}
	defer rows.Close()

	var out []cards.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCard(sc scanner) (*cards.Card, error) {
	var c cards.Card
	var cardType, subject, tags string
	var difficulty int
	err := sc.Scan(&c.ID, &c.ConceptID, &cardType, &subject, &c.Topic,
		&c.Question, &c.Answer, &difficulty, &tags)
	if err != nil {
		return nil, err
	}
	c.Type = cards.CardType(cardType)
	c.Subject = conceptgraph.Subject(subject)
	c.Difficulty = cards.Difficulty(difficulty)
	if c.Tags, err = unmarshalList(tags); err != nil {
		return nil, err
	}
	return &c, nil
}
