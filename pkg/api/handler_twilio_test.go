package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/pkg/database"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type seededCall struct {
	callSid         string
	communicationID string
	engagementID    string
}

// seedCall creates the engagement, communication case, and call context a
// live call would have when the webhook fires.
func seedCall(t *testing.T, client *database.Client, callSid string, withBooking bool) seededCall {
	t.Helper()
	ctx := context.Background()
	comms := services.NewCommunicationService(client.Client)
	engagements := services.NewEngagementService(client.Client)

	engagementID := "engagement_" + callSid
	decision := "declined"
	var bookingID *string
	if withBooking {
		decision = "confirmed"
		id := "booking_" + callSid
		bookingID = &id
	}
	_, err := engagements.Create(ctx, services.EngagementCaseInput{
		EngagementID:     engagementID,
		SchedulingID:     "scheduling_" + callSid,
		RcaID:            "rca_" + callSid,
		CaseID:           "case_" + callSid,
		VehicleID:        "veh_call",
		CustomerDecision: decision,
		BookingID:        bookingID,
	})
	require.NoError(t, err)

	name := "Priya"
	comm, err := comms.Create(ctx, services.CommunicationCaseInput{
		EngagementID:  engagementID,
		CaseID:        "case_" + callSid,
		VehicleID:     "veh_call",
		CustomerPhone: "+919876543210",
		CustomerName:  &name,
	})
	require.NoError(t, err)
	require.NoError(t, comms.AttachCall(ctx, comm.ID, callSid))
	require.NoError(t, comms.CreateCallContext(ctx, services.CallContextInput{
		CallSid:         callSid,
		CommunicationID: comm.ID,
		EngagementID:    engagementID,
		CaseID:          "case_" + callSid,
		VehicleID:       "veh_call",
		CustomerPhone:   "+919876543210",
		CustomerName:    name,
	}))

	return seededCall{callSid: callSid, communicationID: comm.ID, engagementID: engagementID}
}

func advanceTo(t *testing.T, client *database.Client, communicationID string, stage communicationcase.ConversationStage) {
	t.Helper()
	comms := services.NewCommunicationService(client.Client)
	require.NoError(t, comms.AdvanceConversation(context.Background(), communicationID, stage, nil))
}

func gatherForm(callSid, speech string) url.Values {
	return url.Values{
		"CallSid":      {callSid},
		"SpeechResult": {speech},
	}
}

func TestTwilioVoice(t *testing.T) {
	_, router, client := newTestServer(t)

	t.Run("greets and gathers", func(t *testing.T) {
		call := seedCall(t, client, "CA_voice1", false)

		w := doForm(t, router, "/twilio/voice", url.Values{"CallSid": {call.callSid}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<Gather")
		assert.Contains(t, w.Body.String(), "Priya")

		comm, err := client.CommunicationCase.Get(context.Background(), call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.ConversationStageGreeting, comm.ConversationStage)
		require.Len(t, comm.ConversationTranscript, 1)
		assert.Equal(t, "agent", comm.ConversationTranscript[0]["speaker"])
	})

	t.Run("unknown call gets the apology and a hangup", func(t *testing.T) {
		w := doForm(t, router, "/twilio/voice", url.Values{"CallSid": {"CA_unknown"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Hangup")
	})
}

func TestTwilioGather(t *testing.T) {
	srv, router, client := newTestServer(t)
	ctx := context.Background()

	t.Run("explanation yes moves to scheduling", func(t *testing.T) {
		call := seedCall(t, client, "CA_g1", false)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageExplanation)

		w := doForm(t, router, "/twilio/gather", gatherForm(call.callSid, "Yes, go ahead"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Gather")

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.ConversationStageScheduling, comm.ConversationStage)
		require.Len(t, comm.ConversationTranscript, 2)
		assert.Equal(t, "customer", comm.ConversationTranscript[0]["speaker"])
	})

	t.Run("scheduling yes confirms and completes", func(t *testing.T) {
		call := seedCall(t, client, "CA_g2", true)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageScheduling)

		w := doForm(t, router, "/twilio/gather", gatherForm(call.callSid, "yes please"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Hangup")

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.ConversationStageCompleted, comm.ConversationStage)
		assert.Equal(t, communicationcase.CallStatusCompleted, comm.CallStatus)
		require.NotNil(t, comm.Outcome)
		assert.Equal(t, communicationcase.OutcomeConfirmed, *comm.Outcome)
		require.NotNil(t, comm.BookingID)
		assert.Equal(t, "booking_CA_g2", *comm.BookingID)

		published := topicPayloads(t, client.DB(), srv.cfg.Topics.CommunicationDone)
		require.Len(t, published, 1)
		assert.Equal(t, comm.ID, published[0]["communication_id"])
		assert.Equal(t, "confirmed", published[0]["outcome"])
		assert.Equal(t, "booking_CA_g2", published[0]["booking_id"])
		assert.Equal(t, "communication", published[0]["agent_stage"])
	})

	t.Run("explanation no declines and completes", func(t *testing.T) {
		call := seedCall(t, client, "CA_g3", false)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageExplanation)

		w := doForm(t, router, "/twilio/gather", gatherForm(call.callSid, "No thanks"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Hangup")

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		require.NotNil(t, comm.Outcome)
		assert.Equal(t, communicationcase.OutcomeDeclined, *comm.Outcome)
		assert.Nil(t, comm.BookingID)
	})

	t.Run("a question detours through the questions stage", func(t *testing.T) {
		call := seedCall(t, client, "CA_g4", false)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageExplanation)

		w := doForm(t, router, "/twilio/gather", gatherForm(call.callSid, "What exactly is wrong with it?"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Gather")

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.ConversationStageQuestions, comm.ConversationStage)
	})

	t.Run("word matching does not trip on substrings", func(t *testing.T) {
		call := seedCall(t, client, "CA_g5", false)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageScheduling)

		// "know" must not read as "no".
		w := doForm(t, router, "/twilio/gather", gatherForm(call.callSid, "I want to know more"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<Gather")

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.ConversationStageScheduling, comm.ConversationStage)
	})
}

func TestTwilioStatus(t *testing.T) {
	srv, router, client := newTestServer(t)
	ctx := context.Background()

	t.Run("updates the call status", func(t *testing.T) {
		call := seedCall(t, client, "CA_s1", false)

		w := doForm(t, router, "/twilio/status", url.Values{
			"CallSid":    {call.callSid},
			"CallStatus": {"ringing"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.CallStatusRinging, comm.CallStatus)
	})

	t.Run("terminal status on an unfinished dialogue closes it out", func(t *testing.T) {
		call := seedCall(t, client, "CA_s2", false)
		advanceTo(t, client, call.communicationID, communicationcase.ConversationStageGreeting)

		w := doForm(t, router, "/twilio/status", url.Values{
			"CallSid":    {call.callSid},
			"CallStatus": {"no-answer"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		comm, err := client.CommunicationCase.Get(ctx, call.communicationID)
		require.NoError(t, err)
		assert.Equal(t, communicationcase.CallStatusFailed, comm.CallStatus)

		published := topicPayloads(t, client.DB(), srv.cfg.Topics.CommunicationDone)
		require.Len(t, published, 1)
		assert.Equal(t, comm.ID, published[0]["communication_id"])
		assert.Nil(t, published[0]["outcome"])
	})

	t.Run("unknown call sid still answers 200", func(t *testing.T) {
		w := doForm(t, router, "/twilio/status", url.Values{
			"CallSid":    {"CA_nobody"},
			"CallStatus": {"completed"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("missing call sid still answers 200", func(t *testing.T) {
		w := doForm(t, router, "/twilio/status", url.Values{"CallStatus": {"completed"}})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
