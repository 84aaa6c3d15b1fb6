package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// UpsertConcept inserts or replaces a concept row. Concepts are
// immutable during normal operation; replace semantics make re-import
// idempotent.
func (s *Store) UpsertConcept(ctx context.Context, q dbtx, c *conceptgraph.Concept) error {
	elements, err := marshalList(c.Elements)
	if err != nil {
		return err
	}
	traps, err := marshalList(c.CommonTraps)
	if err != nil {
		return err
	}
	exceptions, err := marshalList(c.Exceptions)
	if err != nil {
		return err
	}
	rationales, err := marshalList(c.PolicyRationales)
	if err != nil {
		return err
	}
	prereqs, err := marshalList(c.Prerequisites)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT OR REPLACE INTO concepts
		(id, subject, topic, name, rule_statement, elements, common_traps,
		 exceptions, policy_rationales, difficulty_seed, prerequisites)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.Subject), c.Topic, c.Name, c.RuleStatement,
		elements, traps, exceptions, rationales, c.DifficultySeed, prereqs,
	)
	if err != nil {
		return fmt.Errorf("upsert concept %s: %w", c.ID, err)
	}
	return nil
}

// GetConcept returns the concept with the given ID or ErrNotFound.
func (s *Store) GetConcept(ctx context.Context, id string) (*conceptgraph.Concept, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, subject, topic, name, rule_statement, elements,
		       common_traps, exceptions, policy_rationales,
		       difficulty_seed, prerequisites
		FROM concepts WHERE id = ?`, id)
	c, err := scanConcept(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// ListConcepts returns all concepts, optionally filtered by subject
// (SubjectUnknown = all), ordered by ID.
func (s *Store) ListConcepts(ctx context.Context, subject conceptgraph.Subject) ([]conceptgraph.Concept, error) {
	query := `
		SELECT id, subject, topic, name, rule_statement, elements,
		       common_traps, exceptions, policy_rationales,
		       difficulty_seed, prerequisites
		FROM concepts`
	var args []any
	if subject != conceptgraph.SubjectUnknown {
		query += ` WHERE subject = ?`
		args = append(args, string(subject))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	defer rows.Close()

	var out []conceptgraph.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanConcept(sc scanner) (*conceptgraph.Concept, error) {
	var c conceptgraph.Concept
	var subject, elements, traps, exceptions, rationales, prereqs string
	err := sc.Scan(&c.ID, &subject, &c.Topic, &c.Name, &c.RuleStatement,
		&elements, &traps, &exceptions, &rationales, &c.DifficultySeed, &prereqs)
	if err != nil {
		return nil, err
	}
	c.Subject = conceptgraph.Subject(subject)
	if c.Elements, err = unmarshalList(elements); err != nil {
		return nil, err
	}
	if c.CommonTraps, err = unmarshalList(traps); err != nil {
		return nil, err
	}
	if c.Exceptions, err = unmarshalList(exceptions); err != nil {
		return nil, err
	}
	if c.PolicyRationales, err = unmarshalList(rationales); err != nil {
		return nil, err
	}
	if c.Prerequisites, err = unmarshalList(prereqs); err != nil {
		return nil, err
	}
	return &c, nil
}

func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(b), nil
}

func unmarshalList(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
