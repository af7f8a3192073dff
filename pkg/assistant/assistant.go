// Package assistant wraps the travel chat assistant: a chat-completion
// pass-through when an API key is configured, canned keyword-routed
// responses otherwise.
package assistant

import (
	"context"
	"math/rand"
	"strings"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an expert AI Travel Assistant. You help users plan amazing trips " +
	"with personalized recommendations. Be helpful, enthusiastic, and provide practical travel " +
	"advice. Always consider budget, preferences, and practical logistics."

const greetingResponse = "Hello! I'm your AI Travel Assistant. I'm here to help you plan the " +
	"perfect trip! Tell me about your travel dreams - where would you like to go, what's your " +
	"budget, and what kind of experiences are you looking for?"

var planningResponses = []string{
	"That sounds like an amazing trip! Based on your preferences, I'd recommend considering the weather, local festivals, and peak tourist seasons. Would you like me to create a detailed itinerary?",
	"Great choice! I can help you optimize your travel route, suggest must-see attractions, and find the best local restaurants. What's most important to you - culture, adventure, relaxation, or food?",
	"Perfect! Let me analyze the best time to visit and create a budget breakdown. I'll also suggest some hidden gems that most tourists miss!",
}

var optimizationResponses = []string{
	"I've analyzed your itinerary and found some opportunities to save time and money. Would you like me to suggest alternative routes or timing adjustments?",
	"Your current plan looks good, but I noticed you have some rushed days. Let me spread out your activities for a more relaxed experience.",
	"I can help you optimize this trip by grouping nearby attractions and suggesting the best transportation options.",
}

var budgetResponses = []string{
	"Based on your budget, I can suggest ways to save money without compromising your experience. Would you like budget-friendly alternatives for accommodation or dining?",
	"Here's a breakdown of estimated costs and some tips to stretch your budget further while still having an amazing time!",
	"I found some great deals and money-saving opportunities for your trip. Let me show you how to get the most value.",
}

// Suggestions are the fixed follow-up chips returned with every chat reply
var Suggestions = []string{
	"Tell me more about your travel preferences",
	"Help me plan a detailed itinerary",
	"Suggest budget-friendly options",
	"Find hidden gems and local experiences",
}

// Assistant answers travel-planning chat messages
type Assistant struct {
	client *openai.Client
	model  string
}

// New creates an Assistant. With an empty API key it serves canned
// responses only.
func New(apiKey string) *Assistant {
	a := &Assistant{model: openai.GPT3Dot5Turbo}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Model reports which model answered: the configured chat model, or "mock"
func (a *Assistant) Model() string {
	if a.client == nil {
		return "mock"
	}
	return a.model
}

// Chat produces a reply to the user's message given the conversation so far
func (a *Assistant) Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	if a.client == nil {
		return a.cannedReply(message, history), nil
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Type == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	completion, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "I apologize, but I encountered an error. Please try again!", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// cannedReply routes the message to a response bucket by keyword
func (a *Assistant) cannedReply(message string, history []models.ChatMessage) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"), len(history) == 0:
		return greetingResponse
	case strings.Contains(lower, "budget"), strings.Contains(lower, "cost"), strings.Contains(lower, "money"):
		return budgetResponses[rand.Intn(len(budgetResponses))]
	case strings.Contains(lower, "optimize"), strings.Contains(lower, "improve"), strings.Contains(lower, "better"):
		return optimizationResponses[rand.Intn(len(optimizationResponses))]
	default:
		return planningResponses[rand.Intn(len(planningResponses))]
	}
}
