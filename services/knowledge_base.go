package services

import (
	"fmt"
	"math/rand"

	"zain-site-backend/models"
)

// KnowledgeBase holds the static response templates and implements the
// response selector: (intent, topic) -> canned text plus suggested
// follow-up action identifiers. Tables are built once and never mutated.
type KnowledgeBase struct {
	greetings       []string
	greetingActions []string
	services        map[string]models.ResponsePayload
	faqs            map[string]string
	faqActions      []string
	quickActions    map[string]string
	rng             *rand.Rand
}

// NewKnowledgeBase builds the template tables. The rng drives only the
// cosmetic greeting pick; pass a seeded source in tests.
func NewKnowledgeBase(rng *rand.Rand) *KnowledgeBase {
	return &KnowledgeBase{
		greetings: []string{
			"Hello! I'm ZainBot, your AI assistant from Zain Technologies. How can I help you today?",
			"Hi there! Welcome to Zain Technologies. I'm here to help you learn about our services and solutions.",
			"Greetings! I'm ZainBot, ready to assist you with information about our digital transformation services.",
		},
		greetingActions: []string{"services", "pricing", "demo"},
		services: map[string]models.ResponsePayload{
			models.TopicDigitalProduct: {
				Text:    "We specialize in digital product development including web applications, mobile apps, and SaaS platforms. Our team delivers scalable solutions using modern technologies like React, Node.js, and cloud infrastructure. What type of digital product are you interested in?",
				Actions: []string{"web application", "mobile app", "saas platform", "e-commerce"},
			},
			models.TopicAIAnalytics: {
				Text:    "We provide AI-powered analytics including predictive modeling, machine learning solutions, and data visualization dashboards. Our team specializes in healthcare analytics and business intelligence. What type of AI solution are you interested in?",
				Actions: []string{"machine learning", "healthcare ai", "business intelligence", "data science"},
			},
			models.TopicInfrastructure: {
				Text:    "Our infrastructure services include cloud migration, cybersecurity, DevOps automation, and managed services with 24/7 monitoring. We ensure 99.9% uptime. Are you looking for cloud migration or security services?",
				Actions: []string{"cloud migration", "cybersecurity", "devops", "managed services"},
			},
			models.TopicHealthcare: {
				Text:    "ZAIN HMS is our flagship hospital management system serving 18+ healthcare facilities. It includes patient management, billing, pharmacy, laboratory, and analytics modules. Would you like a demo or pricing information?",
				Actions: []string{"demo", "pricing", "features", "implementation"},
			},
		},
		faqs: map[string]string{
			models.TopicPricing:     "Our pricing varies by project scope and complexity. Most projects range from $50k-$1M. We offer flexible payment terms and ROI-focused solutions. Shall I connect you with our sales team for a detailed quote?",
			models.TopicTimeline:    "Typical project timelines range from 3-12 months depending on complexity. We use agile methodology with 2-week sprints and regular updates. Would you like to discuss your specific timeline requirements?",
			models.TopicSupport:     "We provide 24/7 technical support, dedicated account management, and comprehensive training programs. All our solutions include ongoing maintenance and updates. What type of support are you most interested in?",
			models.TopicSecurity:    "We implement enterprise-grade security including end-to-end encryption, SOC 2 compliance, regular audits, and HIPAA compliance for healthcare clients. Security is embedded in every layer of our solutions.",
			models.TopicIntegration: "We specialize in system integration with APIs, HL7/FHIR for healthcare, ERP systems, and legacy platform modernization. Our integration approach ensures seamless data flow and system reliability.",
		},
		faqActions: []string{"contact", "demo"},
		quickActions: map[string]string{
			"services": "We offer four main service areas:\n\n🔹 Digital Product Development\n🔹 AI & Advanced Analytics\n🔹 Infrastructure & Cybersecurity\n🔹 Consulting & Managed Services\n\nWhich area interests you most?",
			"pricing":  "Our pricing is project-based and depends on scope and complexity. Most engagements range from $50K to $1M+. We offer flexible payment terms and focus on ROI. Would you like a custom quote?",
			"demo":     "I'd love to show you our solutions in action! What would you like to see?\n\n• ZAIN HMS Healthcare Platform\n• AI Analytics Dashboard\n• Infrastructure Monitoring\n• Custom Application Demo",
			"contact":  "Ready to discuss your project? Here are the best ways to reach our team:\n\n📧 hello@zain-technologies.com\n📞 Schedule a discovery call\n📝 Fill out our contact form\n\nWhat works best for you?",
		},
		rng: rng,
	}
}

// Respond maps a classification to its response payload. Selection is pure
// apart from the greeting pick, which is uniform over a fixed pool; the
// pool membership, not the specific pick, is the contract. Unknown topics
// fall back to the general response rather than failing.
func (kb *KnowledgeBase) Respond(result models.Classification, utterance string) models.ResponsePayload {
	switch result.Intent {
	case models.IntentGreeting:
		return models.ResponsePayload{
			Text:    kb.greetings[kb.rng.Intn(len(kb.greetings))],
			Actions: kb.greetingActions,
		}

	case models.IntentService:
		if svc, ok := kb.services[result.Topic]; ok {
			return svc
		}
		return kb.generalResponse(utterance)

	case models.IntentFAQ:
		if text, ok := kb.faqs[result.Topic]; ok {
			return models.ResponsePayload{Text: text, Actions: kb.faqActions}
		}
		return kb.generalResponse(utterance)

	case models.IntentContact:
		return models.ResponsePayload{
			Text:    "I'd be happy to connect you with our team! You can:\n\n• Fill out our contact form\n• Email us at hello@zain-technologies.com\n• Schedule a discovery call\n\nWhat works best for you?",
			Actions: []string{"contact_form", "email", "schedule_call"},
		}

	case models.IntentDemo:
		return models.ResponsePayload{
			Text:    "Great! I can help you request a demo. What type of solution are you most interested in?\n\n• ZAIN HMS (Healthcare)\n• AI & Analytics Platform\n• Infrastructure Solutions\n• Custom Development",
			Actions: []string{"hms_demo", "ai_demo", "infra_demo", "custom_demo"},
		}

	default:
		return kb.generalResponse(utterance)
	}
}

// QuickAction resolves one of the widget's quick-action buttons. Unknown
// actions get the general response.
func (kb *KnowledgeBase) QuickAction(action string) models.ResponsePayload {
	if text, ok := kb.quickActions[action]; ok {
		return models.ResponsePayload{
			Text:    text,
			Actions: []string{"contact_form", "schedule_call"},
		}
	}
	return kb.generalResponse(action)
}

// Greetings exposes the greeting pool for tests and the intents endpoint.
func (kb *KnowledgeBase) Greetings() []string {
	out := make([]string, len(kb.greetings))
	copy(out, kb.greetings)
	return out
}

func (kb *KnowledgeBase) generalResponse(utterance string) models.ResponsePayload {
	return models.ResponsePayload{
		Text:    fmt.Sprintf("I understand you're asking about: \"%s\"\n\nI'd recommend connecting with our team for detailed information. They can provide specific answers about our services, pricing, and how we can help with your project.", utterance),
		Actions: []string{"contact", "services", "schedule_call"},
	}
}

// ActionLabels is the closed vocabulary of suggested-action identifiers the
// widget maps to buttons.
var ActionLabels = map[string]string{
	"contact_form":  "Contact Form",
	"schedule_call": "Schedule Call",
	"email":         "Send Email",
	"hms_demo":      "ZAIN HMS Demo",
	"ai_demo":       "AI Platform Demo",
	"infra_demo":    "Infrastructure Demo",
	"custom_demo":   "Custom Demo",
}
