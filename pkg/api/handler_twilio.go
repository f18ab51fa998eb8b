package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/telephony"
)

// The webhook drives a short dialogue per call:
// greeting -> explanation -> (scheduling | questions) -> completed.
// Every turn is generated by the model when one is wired, with canned
// fallbacks so a model outage degrades the call, not the pipeline.

const gatherAction = "/twilio/gather"

// twilioVoice handles the provider's initial callback after the outbound
// call connects. It speaks the greeting and gathers the first reply.
func (s *Server) twilioVoice(c *gin.Context) {
	ctx := c.Request.Context()
	callSid := c.PostForm("CallSid")
	if callSid == "" {
		s.answerTwiML(c, s.errorTwiML())
		return
	}

	cc, err := s.deps.Communications.GetCallContext(ctx, callSid)
	if err != nil {
		s.log.Warn("voice callback for unknown call", "call_sid", callSid, "error", err)
		s.answerTwiML(c, s.errorTwiML())
		return
	}

	name := cc.CustomerName
	if name == "" {
		name = "Customer"
	}
	greeting := s.callTurn(ctx, greetingPrompt(name, cc.VehicleID),
		fmt.Sprintf("Hello %s, this is FleetSense calling about your vehicle %s. Do you have a moment to discuss an important matter?", name, cc.VehicleID))

	err = s.deps.Communications.AdvanceConversation(ctx, cc.CommunicationID,
		communicationcase.ConversationStageGreeting,
		[]models.DialogueTurn{{Speaker: "agent", Text: greeting}})
	if err != nil {
		s.log.Error("failed to record greeting turn", "communication_id", cc.CommunicationID, "error", err)
	}

	xml, err := telephony.GatherSpeech(greeting, gatherAction)
	if err != nil {
		s.log.Error("failed to render gather twiml", "call_sid", callSid, "error", err)
		s.answerTwiML(c, s.errorTwiML())
		return
	}
	s.answerTwiML(c, xml)
}

// twilioGather handles transcribed customer speech and advances the
// conversation state machine.
func (s *Server) twilioGather(c *gin.Context) {
	ctx := c.Request.Context()
	callSid := c.PostForm("CallSid")
	input := strings.TrimSpace(c.PostForm("SpeechResult"))
	if input == "" {
		input = strings.TrimSpace(c.PostForm("Digits"))
	}
	if callSid == "" {
		s.answerTwiML(c, s.errorTwiML())
		return
	}

	cc, err := s.deps.Communications.GetCallContext(ctx, callSid)
	if err != nil {
		s.log.Warn("gather callback for unknown call", "call_sid", callSid, "error", err)
		s.answerTwiML(c, s.errorTwiML())
		return
	}
	comm, err := s.deps.Communications.Get(ctx, cc.CommunicationID)
	if err != nil {
		s.log.Error("gather callback without communication case",
			"communication_id", cc.CommunicationID, "error", err)
		s.answerTwiML(c, s.errorTwiML())
		return
	}

	s.log.Debug("Customer turn", "call_sid", callSid,
		"stage", string(comm.ConversationStage), "speech", s.masker.MaskText(input))

	reply, nextStage := s.nextTurn(ctx, comm, input)
	turns := []models.DialogueTurn{
		{Speaker: "customer", Text: input},
		{Speaker: "agent", Text: reply},
	}

	if nextStage != communicationcase.ConversationStageCompleted {
		if err := s.deps.Communications.AdvanceConversation(ctx, comm.ID, nextStage, turns); err != nil {
			s.log.Error("failed to advance conversation", "communication_id", comm.ID, "error", err)
		}
		xml, err := telephony.GatherSpeech(reply, gatherAction)
		if err != nil {
			s.log.Error("failed to render gather twiml", "call_sid", callSid, "error", err)
			s.answerTwiML(c, s.errorTwiML())
			return
		}
		s.answerTwiML(c, xml)
		return
	}

	s.completeCall(ctx, cc, comm, input, turns)

	xml, err := telephony.SayHangup(reply)
	if err != nil {
		s.log.Error("failed to render hangup twiml", "call_sid", callSid, "error", err)
		s.answerTwiML(c, s.errorTwiML())
		return
	}
	s.answerTwiML(c, xml)
}

// completeCall finalises the case on the dialogue's terminal transition and
// announces the outcome.
func (s *Server) completeCall(ctx context.Context, cc *ent.CallContext, comm *ent.CommunicationCase, input string, turns []models.DialogueTurn) {
	outcome := communicationcase.OutcomeDeclined
	if containsWord(input, "yes") && comm.ConversationStage == communicationcase.ConversationStageScheduling {
		outcome = communicationcase.OutcomeConfirmed
	}

	var bookingID *string
	if outcome == communicationcase.OutcomeConfirmed {
		eng, err := s.deps.Engagements.Get(ctx, cc.EngagementID)
		if err != nil {
			s.log.Warn("confirmed call without engagement record",
				"engagement_id", cc.EngagementID, "error", err)
		} else {
			bookingID = eng.BookingID
		}
	}

	err := s.deps.Communications.AdvanceConversation(ctx, comm.ID,
		communicationcase.ConversationStageCompleted, turns)
	if err != nil {
		s.log.Error("failed to record terminal turns", "communication_id", comm.ID, "error", err)
	}
	if err := s.deps.Communications.Complete(ctx, comm.ID, outcome, bookingID); err != nil {
		s.log.Error("failed to complete communication", "communication_id", comm.ID, "error", err)
		return
	}

	payload := map[string]any{
		"communication_id": comm.ID,
		"engagement_id":    cc.EngagementID,
		"case_id":          cc.CaseID,
		"vehicle_id":       cc.VehicleID,
		"outcome":          string(outcome),
		"agent_stage":      string(models.StageCommunication),
	}
	if bookingID != nil {
		payload["booking_id"] = *bookingID
	}
	if err := s.deps.Publisher.Publish(ctx, s.cfg.Topics.CommunicationDone, payload); err != nil {
		s.log.Error("failed to publish communication-complete",
			"communication_id", comm.ID, "error", err)
	}
}

// twilioStatus handles call-status callbacks. Always answers 200: the
// provider treats anything else as a delivery failure and retries.
func (s *Server) twilioStatus(c *gin.Context) {
	ctx := c.Request.Context()
	callSid := c.PostForm("CallSid")
	rawStatus := c.PostForm("CallStatus")
	if callSid == "" {
		c.String(http.StatusOK, "OK")
		return
	}

	comm, err := s.deps.Communications.ByCallSid(ctx, callSid)
	if err != nil {
		s.log.Warn("status callback for unknown call", "call_sid", callSid, "status", rawStatus)
		c.String(http.StatusOK, "OK")
		return
	}

	status, ok := callStatusFrom(rawStatus)
	if !ok {
		c.String(http.StatusOK, "OK")
		return
	}
	if err := s.deps.Communications.SetCallStatus(ctx, comm.ID, status); err != nil {
		s.log.Error("failed to update call status", "communication_id", comm.ID, "error", err)
	}

	// A provider-terminal status on a dialogue that never completed means
	// the customer was not reached: close it out with no outcome.
	terminal := status == communicationcase.CallStatusCompleted || status == communicationcase.CallStatusFailed
	if terminal && comm.ConversationStage != communicationcase.ConversationStageCompleted {
		payload := map[string]any{
			"communication_id": comm.ID,
			"engagement_id":    comm.EngagementID,
			"case_id":          comm.CaseID,
			"vehicle_id":       comm.VehicleID,
			"outcome":          nil,
			"agent_stage":      string(models.StageCommunication),
		}
		if err := s.deps.Publisher.Publish(ctx, s.cfg.Topics.CommunicationDone, payload); err != nil {
			s.log.Error("failed to publish communication-complete",
				"communication_id", comm.ID, "error", err)
		}
	}

	c.String(http.StatusOK, "OK")
}

// callStatusFrom maps provider status strings onto the case enum.
func callStatusFrom(raw string) (communicationcase.CallStatus, bool) {
	switch raw {
	case "initiated", "queued":
		return communicationcase.CallStatusInitiated, true
	case "ringing":
		return communicationcase.CallStatusRinging, true
	case "in-progress", "answered":
		return communicationcase.CallStatusAnswered, true
	case "completed":
		return communicationcase.CallStatusCompleted, true
	case "busy", "failed", "no-answer", "canceled":
		return communicationcase.CallStatusFailed, true
	default:
		return "", false
	}
}

func (s *Server) answerTwiML(c *gin.Context, xml string) {
	c.Data(http.StatusOK, "text/xml", []byte(xml))
}

func (s *Server) errorTwiML() string {
	xml, err := telephony.SayHangup("We are sorry, we ran into a technical issue. Please contact our support team. Goodbye.")
	if err != nil {
		// VoiceSay/VoiceHangup render from static templates; this cannot
		// fail for plain text.
		return "<Response/>"
	}
	return xml
}

// containsWord reports whether the input contains the word on its own, so
// "no" does not match inside "know".
func containsWord(input, word string) bool {
	for _, f := range strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if f == word {
			return true
		}
	}
	return false
}
