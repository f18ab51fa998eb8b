package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/pkg/llm"
)

const dialogueSystemPrompt = `You are a voice assistant for a vehicle maintenance service making a phone call to inform a customer about a vehicle issue and help them schedule service.

Rules:
- Keep responses SHORT (under 30 words). This is a voice call.
- Use simple, clear language. No technical jargon.
- Be empathetic and professional.

Return ONLY a JSON object:
{"message": "text to speak", "next_stage": "greeting|explanation|scheduling|questions|completed"}`

// greetingPrompt asks the model for the opening turn of a call.
func greetingPrompt(customerName, vehicleID string) string {
	return fmt.Sprintf(`%s

Generate the initial greeting for this call:
- Customer name: %s
- Vehicle: %s

Introduce yourself, say you are calling about their vehicle, and ask whether they have a moment.`,
		dialogueSystemPrompt, customerName, vehicleID)
}

// turnPrompt asks the model for the next turn given the conversation so far.
func turnPrompt(stage communicationcase.ConversationStage, history []string, input string) string {
	return fmt.Sprintf(`%s

Current conversation stage: %s
Conversation history:
%s

Customer just said: %q

Generate the next response. If the customer agrees to schedule, set next_stage="scheduling". If the customer asks questions, set next_stage="questions". If the customer declines or the conversation is done, set next_stage="completed".`,
		dialogueSystemPrompt, stage, strings.Join(history, "\n"), input)
}

// callTurn asks the model for a single spoken line, falling back to the
// canned text when no model is wired or the response is unusable.
func (s *Server) callTurn(ctx context.Context, prompt, fallback string) string {
	if s.deps.Model == nil {
		return fallback
	}
	response, err := s.deps.Model.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("model turn generation failed, using canned line", "error", err)
		return fallback
	}
	parsed, err := llm.ExtractJSON(response)
	if err != nil {
		s.log.Warn("model turn was not parseable, using canned line", "error", err)
		return fallback
	}
	if msg, ok := parsed["message"].(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	return fallback
}

// nextTurn produces the agent's reply and the conversation's next stage.
// The model proposes both; the deterministic table below is the fallback
// and the validator of whatever the model proposes.
func (s *Server) nextTurn(ctx context.Context, comm *ent.CommunicationCase, input string) (string, communicationcase.ConversationStage) {
	fallbackReply, fallbackStage := cannedTurn(comm.ConversationStage, input)

	if s.deps.Model == nil {
		return fallbackReply, fallbackStage
	}

	history := make([]string, 0, 5)
	transcript := comm.ConversationTranscript
	if len(transcript) > 5 {
		transcript = transcript[len(transcript)-5:]
	}
	for _, turn := range transcript {
		speaker, _ := turn["speaker"].(string)
		text, _ := turn["text"].(string)
		history = append(history, fmt.Sprintf("%s: %s", speaker, text))
	}

	response, err := s.deps.Model.Generate(ctx, turnPrompt(comm.ConversationStage, history, input))
	if err != nil {
		s.log.Warn("model turn generation failed, using canned line", "error", err)
		return fallbackReply, fallbackStage
	}
	parsed, err := llm.ExtractJSON(response)
	if err != nil {
		s.log.Warn("model turn was not parseable, using canned line", "error", err)
		return fallbackReply, fallbackStage
	}

	reply := fallbackReply
	if msg, ok := parsed["message"].(string); ok && strings.TrimSpace(msg) != "" {
		reply = msg
	}
	stage := fallbackStage
	if raw, ok := parsed["next_stage"].(string); ok {
		if validated := communicationcase.ConversationStage(raw); validStage(validated) {
			stage = validated
		}
	}
	return reply, stage
}

// cannedTurn is the model-free dialogue table.
func cannedTurn(current communicationcase.ConversationStage, input string) (string, communicationcase.ConversationStage) {
	yes := containsWord(input, "yes")
	no := containsWord(input, "no")

	switch current {
	case communicationcase.ConversationStagePending, communicationcase.ConversationStageGreeting:
		return "Your vehicle needs attention soon. We found an issue during monitoring and recommend a service visit. Shall I book a slot for you?",
			communicationcase.ConversationStageExplanation
	case communicationcase.ConversationStageExplanation:
		switch {
		case yes:
			return "Great. I have a service slot reserved for you. Would you like to confirm this appointment? Please say yes or no.",
				communicationcase.ConversationStageScheduling
		case no:
			return "No worries. You can always book later through your service center. Thank you for your time. Goodbye.",
				communicationcase.ConversationStageCompleted
		default:
			return "Happy to explain. Our monitoring flagged a component that may fail soon, and an early service visit avoids a breakdown. Any questions?",
				communicationcase.ConversationStageQuestions
		}
	case communicationcase.ConversationStageScheduling:
		switch {
		case yes:
			return "Wonderful, your appointment is confirmed. We will send the details shortly. Thank you and have a great day.",
				communicationcase.ConversationStageCompleted
		case no:
			return "Understood, we will not book anything now. Thank you for your time. Goodbye.",
				communicationcase.ConversationStageCompleted
		default:
			return "Sorry, I did not catch that. Would you like to confirm the appointment? Please say yes or no.",
				communicationcase.ConversationStageScheduling
		}
	case communicationcase.ConversationStageQuestions:
		switch {
		case yes:
			return "Great. Would you like to confirm the service appointment? Please say yes or no.",
				communicationcase.ConversationStageScheduling
		case no:
			return "No problem at all. Thank you for your time. Goodbye.",
				communicationcase.ConversationStageCompleted
		default:
			return "Our team can walk you through the details at the service center. Shall we book the visit?",
				communicationcase.ConversationStageScheduling
		}
	default:
		return "Thank you for your time. Goodbye.", communicationcase.ConversationStageCompleted
	}
}

func validStage(s communicationcase.ConversationStage) bool {
	switch s {
	case communicationcase.ConversationStagePending,
		communicationcase.ConversationStageGreeting,
		communicationcase.ConversationStageExplanation,
		communicationcase.ConversationStageScheduling,
		communicationcase.ConversationStageQuestions,
		communicationcase.ConversationStageCompleted:
		return true
	}
	return false
}
