package conceptgraph

import "strings"

// Subject represents a bar-exam subject area.
type Subject string

const (
	SubjectContracts Subject = "contracts"
	SubjectTorts     Subject = "torts"
	SubjectCriminal  Subject = "criminal-law"
	SubjectCivPro    Subject = "civil-procedure"
	SubjectConLaw    Subject = "constitutional-law"
	SubjectEvidence  Subject = "evidence"
	SubjectProperty  Subject = "real-property"
	SubjectUnknown   Subject = "unknown"
)

// AllSubjects returns the known subjects in display order.
// SubjectUnknown is deliberately excluded: it is a routing target for
// importers, not a study area.
func AllSubjects() []Subject {
	return []Subject{
		SubjectContracts,
		SubjectTorts,
		SubjectCriminal,
		SubjectCivPro,
		SubjectConLaw,
		SubjectEvidence,
		SubjectProperty,
	}
}

// subjectAliases maps the freeform subject strings that appear in
// authored content to canonical subjects.
var subjectAliases = map[string]Subject{
	"contracts":          SubjectContracts,
	"contract":           SubjectContracts,
	"ucc":                SubjectContracts,
	"torts":              SubjectTorts,
	"tort":               SubjectTorts,
	"criminal law":       SubjectCriminal,
	"criminal-law":       SubjectCriminal,
	"crim":               SubjectCriminal,
	"civil procedure":    SubjectCivPro,
	"civil-procedure":    SubjectCivPro,
	"civpro":             SubjectCivPro,
	"constitutional law": SubjectConLaw,
	"constitutional-law": SubjectConLaw,
	"con law":            SubjectConLaw,
	"evidence":           SubjectEvidence,
	"real property":      SubjectProperty,
	"real-property":      SubjectProperty,
	"property":           SubjectProperty,
}

// ParseSubject resolves a freeform subject string to a Subject.
// Unrecognized strings resolve to SubjectUnknown with ok=false; callers
// (the importer) decide whether to skip or route the record.
func ParseSubject(s string) (Subject, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if subj, ok := subjectAliases[key]; ok {
		return subj, true
	}
	return SubjectUnknown, false
}

// DisplayName returns a human-readable name for a subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectContracts:
		return "Contracts"
	case SubjectTorts:
		return "Torts"
	case SubjectCriminal:
		return "Criminal Law"
	case SubjectCivPro:
		return "Civil Procedure"
	case SubjectConLaw:
		return "Constitutional Law"
	case SubjectEvidence:
		return "Evidence"
	case SubjectProperty:
		return "Real Property"
	case SubjectUnknown:
		return "Unknown"
	default:
		return string(s)
	}
}

// Valid reports whether the subject is one of the known study areas.
func (s Subject) Valid() bool {
	for _, known := range AllSubjects() {
		if s == known {
			return true
		}
	}
	return false
}
