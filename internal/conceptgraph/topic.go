package conceptgraph

import "strings"

// TopicClassifier infers a topic label from a concept name.
// Returns ("", false) when no rule applies. Classification is heuristic
// and may misclassify; it lives behind this type so the heuristic can be
// swapped without touching the scheduler or card generator.
type TopicClassifier func(subject Subject, name string) (string, bool)

// topicRule matches a set of keywords to a topic label.
type topicRule struct {
	subject  Subject // SubjectUnknown matches any subject
	keywords []string
	topic    string
}

// topicRules are evaluated in order; the first match wins. More specific
// rules come before broader ones.
var topicRules = []topicRule{
	{SubjectContracts, []string{"statute of frauds"}, "statute-of-frauds"},
	{SubjectContracts, []string{"parol evidence"}, "parol-evidence"},
	{SubjectContracts, []string{"offer", "acceptance", "mutual assent"}, "formation"},
	{SubjectContracts, []string{"consideration", "promissory estoppel"}, "consideration"},
	{SubjectContracts, []string{"breach", "damages", "remedies", "specific performance"}, "remedies"},
	{SubjectContracts, []string{"third party", "assignment", "delegation"}, "third-party-rights"},
	{SubjectTorts, []string{"negligence", "duty", "proximate cause", "breach of duty"}, "negligence"},
	{SubjectTorts, []string{"battery", "assault", "false imprisonment", "intentional infliction"}, "intentional-torts"},
	{SubjectTorts, []string{"strict liability", "abnormally dangerous", "products liability"}, "strict-liability"},
	{SubjectTorts, []string{"defamation", "privacy"}, "dignitary-torts"},
	{SubjectCriminal, []string{"murder", "homicide", "manslaughter"}, "homicide"},
	{SubjectCriminal, []string{"larceny", "robbery", "burglary", "embezzlement"}, "property-crimes"},
	{SubjectCriminal, []string{"accomplice", "conspiracy", "attempt", "solicitation"}, "inchoate-offenses"},
	{SubjectCriminal, []string{"insanity", "self-defense", "duress", "necessity"}, "defenses"},
	{SubjectCivPro, []string{"personal jurisdiction", "minimum contacts"}, "personal-jurisdiction"},
	{SubjectCivPro, []string{"subject matter", "diversity", "federal question"}, "subject-matter-jurisdiction"},
	{SubjectCivPro, []string{"erie", "choice of law"}, "erie-doctrine"},
	{SubjectCivPro, []string{"preclusion", "res judicata", "collateral estoppel"}, "preclusion"},
	{SubjectConLaw, []string{"commerce clause", "dormant commerce"}, "commerce-clause"},
	{SubjectConLaw, []string{"equal protection", "due process"}, "individual-rights"},
	{SubjectConLaw, []string{"first amendment", "speech", "free exercise", "establishment"}, "first-amendment"},
	{SubjectEvidence, []string{"hearsay", "out-of-court"}, "hearsay"},
	{SubjectEvidence, []string{"character evidence", "propensity"}, "character-evidence"},
	{SubjectEvidence, []string{"privilege", "attorney-client", "spousal"}, "privileges"},
	{SubjectEvidence, []string{"relevance", "403", "prejudice"}, "relevance"},
	{SubjectProperty, []string{"fee simple", "life estate", "remainder", "future interest"}, "estates-and-future-interests"},
	{SubjectProperty, []string{"easement", "covenant", "servitude"}, "servitudes"},
	{SubjectProperty, []string{"adverse possession"}, "adverse-possession"},
	{SubjectProperty, []string{"landlord", "tenant", "lease"}, "landlord-tenant"},
	{SubjectProperty, []string{"mortgage", "foreclosure", "recording"}, "mortgages-and-recording"},
}

// DefaultClassifier matches concept names against per-subject keyword
// lists. First matching rule wins.
func DefaultClassifier(subject Subject, name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, rule := range topicRules {
		if rule.subject != SubjectUnknown && rule.subject != subject {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.topic, true
			}
		}
	}
	return "", false
}

// ResolveTopic returns the concept's topic, classifying from the name
// when no topic was authored. Unclassifiable concepts keep their own
// name as topic so review events are never silently binned elsewhere.
func ResolveTopic(c *Concept, classify TopicClassifier) string {
	if c.Topic != "" {
		return c.Topic
	}
	if classify == nil {
		classify = DefaultClassifier
	}
	if topic, ok := classify(c.Subject, c.Name); ok {
		return topic
	}
	return c.Name
}
