package ai

import (
	"context"
	"fmt"
	"strings"

	"madhurfashion.in/storefront/pkg/models"
)

const (
	maxReplyTokens      = 300
	samplingTemperature = 0.7

	// Only the trailing window of the conversation is sent as context.
	historyWindow = 6
)

const stylistSystemPrompt = `You are Madhur Fashion AI Assistant, an expert personal stylist and fashion consultant specializing in Indian and international fashion.

The store may not have inventory yet, so provide general fashion advice while being helpful and professional.

1. FASHION EXPERTISE:
- Traditional Indian wear (sarees, lehengas, sherwanis, kurtas, suits, anarkali)
- Western fashion (formal wear, casual wear, party wear)
- Seasonal trends, color coordination and body type styling
- Fabric knowledge and occasion-appropriate dressing

2. CONSULTATION APPROACH:
- Ask about occasion, preferences, budget and body type
- Suggest style categories, colors and types of clothing items
- Provide specific, actionable styling tips

3. COMMUNICATION STYLE:
- Warm, friendly, professional fashion consultant
- Ask clarifying follow-up questions
- Be encouraging and confidence-building

Always focus on valuable fashion consultation that helps customers make informed choices.`

// NotConfiguredResponse is the short deterministic reply used when no API key
// was provided at startup. It echoes the user's message back with a styling
// question in the requested language.
func NotConfiguredResponse(language, message string) string {
	if language == "hi" {
		return fmt.Sprintf("आपके सवाल \"%s\" के लिए धन्यवाद। कृपया बताएं कि आप किस प्रकार की स्टाइलिंग की तलाश में हैं?", message)
	}
	return fmt.Sprintf("Thank you for asking about \"%s\". Could you tell me what kind of styling you're looking for?", message)
}

// FallbackResponse is the contextual reply used when the remote model call
// fails. It echoes the user's message back with a clarifying question in the
// requested language.
func FallbackResponse(language, message string) string {
	if language == "hi" {
		if message == "" {
			message = "फैशन सलाह"
		}
		return fmt.Sprintf("आपके सवाल \"%s\" के लिए धन्यवाद। मैं आपकी मदद करना चाहूंगा। कृपया बताएं कि आप किस अवसर के लिए कपड़े खोज रहे हैं?", message)
	}
	if message == "" {
		message = "fashion advice"
	}
	return fmt.Sprintf("Thank you for asking about \"%s\". I'd love to help you! Could you tell me what occasion you're shopping for or what style you prefer?", message)
}

func buildUserPrompt(message, language string, history []models.ConversationTurn) string {
	var b strings.Builder

	if language == "hi" {
		b.WriteString("Please respond in Hindi (हिंदी में जवाब दें) using natural, conversational tone.\n")
	} else {
		b.WriteString("Please respond in English using a warm, professional tone.\n")
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	if len(history) > 0 {
		b.WriteString("\nPrevious conversation:\n")
		for _, turn := range history {
			speaker := "Assistant"
			if turn.Sender == "user" {
				speaker = "User"
			}
			b.WriteString(speaker)
			b.WriteString(": ")
			b.WriteString(turn.Text)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nCurrent user message: ")
	b.WriteString(message)
	b.WriteString("\n\nPlease provide a helpful, personalized fashion advice response:")
	return b.String()
}

// Stylist is the chat gateway. It always produces some assistant reply; the
// second return reports whether the canned fallback was used.
type Stylist struct{}

func NewStylist() *Stylist {
	return &Stylist{}
}

func (s *Stylist) Respond(ctx context.Context, message, language string, history []models.ConversationTurn) (string, bool) {
	if !IsEnabled() {
		return NotConfiguredResponse(language, message), true
	}

	reply, err := generateCompletion(ctx, stylistSystemPrompt, buildUserPrompt(message, language, history))
	if err != nil {
		return FallbackResponse(language, message), true
	}
	return reply, false
}
