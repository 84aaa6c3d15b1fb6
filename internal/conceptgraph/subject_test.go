package conceptgraph

import "testing"

func TestParseSubject(t *testing.T) {
	tests := []struct {
		in     string
		want   Subject
		wantOK bool
	}{
		{"contracts", SubjectContracts, true},
		{"Contract", SubjectContracts, true},
		{"UCC", SubjectContracts, true},
		{"  Torts  ", SubjectTorts, true},
		{"Criminal Law", SubjectCriminal, true},
		{"civpro", SubjectCivPro, true},
		{"Con Law", SubjectConLaw, true},
		{"evidence", SubjectEvidence, true},
		{"Real Property", SubjectProperty, true},
		{"property", SubjectProperty, true},
		{"maritime law", SubjectUnknown, false},
		{"", SubjectUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSubject(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSubject(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSubjectValid(t *testing.T) {
	for _, s := range AllSubjects() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if SubjectUnknown.Valid() {
		t.Error("unknown must not be a valid study area")
	}
	if Subject("admiralty").Valid() {
		t.Error("arbitrary subject must not be valid")
	}
}

func TestDefaultClassifier(t *testing.T) {
	tests := []struct {
		subject Subject
		name    string
		want    string
		wantOK  bool
	}{
		{SubjectTorts, "Negligence Per Se", "negligence", true},
		{SubjectTorts, "Battery", "intentional-torts", true},
		{SubjectEvidence, "Hearsay Exceptions", "hearsay", true},
		{SubjectContracts, "Statute of Frauds", "statute-of-frauds", true},
		{SubjectCivPro, "Erie Doctrine", "erie-doctrine", true},
		{SubjectProperty, "Adverse Possession", "adverse-possession", true},
		{SubjectTorts, "Some Novel Doctrine", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultClassifier(tt.subject, tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DefaultClassifier(%s, %q) = (%q, %v), want (%q, %v)",
					tt.subject, tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveTopic(t *testing.T) {
	// Authored topic always wins.
	c := &Concept{Subject: SubjectTorts, Name: "Negligence", Topic: "authored-topic"}
	if got := ResolveTopic(c, DefaultClassifier); got != "authored-topic" {
		t.Errorf("got %q, want authored topic", got)
	}

	// Classifier fills in when no topic authored.
	c = &Concept{Subject: SubjectTorts, Name: "Negligence"}
	if got := ResolveTopic(c, DefaultClassifier); got != "negligence" {
		t.Errorf("got %q, want classified topic", got)
	}

	// Fallback: concept name when nothing matches.
	c = &Concept{Subject: SubjectTorts, Name: "Some Novel Doctrine"}
	if got := ResolveTopic(c, DefaultClassifier); got != "Some Novel Doctrine" {
		t.Errorf("got %q, want concept name fallback", got)
	}
}
