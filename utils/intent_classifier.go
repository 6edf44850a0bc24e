package utils

import (
	"regexp"
	"strings"

	"zain-site-backend/models"
)

// rule is one (pattern, result) pair. Rules are evaluated in declaration
// order and the first match wins, so ordering carries behavior: an
// utterance matching several keyword groups resolves to the highest-ranked
// one, never to a best-score combination.
type rule struct {
	pattern    *regexp.Regexp
	intent     models.MessageIntent
	topic      string
	confidence float64
}

type IntentClassifier struct {
	rules    []rule
	fallback models.Classification
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		rules: []rule{
			{
				pattern:    regexp.MustCompile(`hello|hi|hey|greetings|good (morning|afternoon|evening)`),
				intent:     models.IntentGreeting,
				confidence: 0.9,
			},
			{
				pattern:    regexp.MustCompile(`digital|web|app|software|development|website|mobile`),
				intent:     models.IntentService,
				topic:      models.TopicDigitalProduct,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`ai|analytics|machine learning|data|artificial intelligence|ml`),
				intent:     models.IntentService,
				topic:      models.TopicAIAnalytics,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`infrastructure|cloud|security|devops|cyber|server|hosting`),
				intent:     models.IntentService,
				topic:      models.TopicInfrastructure,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`hospital|healthcare|hms|medical|clinic|patient`),
				intent:     models.IntentService,
				topic:      models.TopicHealthcare,
				confidence: 0.9,
			},
			{
				pattern:    regexp.MustCompile(`price|pricing|cost|budget|how much|expense`),
				intent:     models.IntentFAQ,
				topic:      models.TopicPricing,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`timeline|time|duration|how long|when|schedule`),
				intent:     models.IntentFAQ,
				topic:      models.TopicTimeline,
				confidence: 0.7,
			},
			{
				pattern:    regexp.MustCompile(`support|help|assistance|maintain|maintenance`),
				intent:     models.IntentFAQ,
				topic:      models.TopicSupport,
				confidence: 0.7,
			},
			{
				pattern:    regexp.MustCompile(`security|secure|safety|protection|privacy`),
				intent:     models.IntentFAQ,
				topic:      models.TopicSecurity,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`integration|integrate|connect|api|interface`),
				intent:     models.IntentFAQ,
				topic:      models.TopicIntegration,
				confidence: 0.7,
			},
			{
				pattern:    regexp.MustCompile(`contact|reach|talk|speak|call|email`),
				intent:     models.IntentContact,
				confidence: 0.8,
			},
			{
				pattern:    regexp.MustCompile(`demo|demonstration|show|example|preview|trial`),
				intent:     models.IntentDemo,
				confidence: 0.8,
			},
		},
		fallback: models.Classification{
			Intent:     models.IntentGeneral,
			Confidence: 0.3,
		},
	}
}

// Classify maps an utterance to exactly one classification. It is a pure
// function of the utterance and the rule table: no state, no errors, same
// result for the same input. Empty and unmatchable input both classify as
// general with the baseline confidence.
func (ic *IntentClassifier) Classify(utterance string) models.Classification {
	text := strings.ToLower(utterance)

	for _, r := range ic.rules {
		if r.pattern.MatchString(text) {
			return models.Classification{
				Intent:     r.intent,
				Topic:      r.topic,
				Confidence: r.confidence,
			}
		}
	}

	return ic.fallback
}
