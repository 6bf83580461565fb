package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/homevista/property-listings/internal/queue"
	"github.com/homevista/property-listings/internal/repository"
)

type recordingPublisher struct {
	events []queue.InquiryReceivedEvent
}

func (p *recordingPublisher) PublishInquiryReceived(_ context.Context, ev queue.InquiryReceivedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func TestInquiryCreatePublishesEvent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stored inquiry flows into the event", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: "inquiries"},
				{Key: "seq", Value: int64(5)},
			}}),
			mtest.CreateSuccessResponse(),
		)
		seq := repository.NewSequenceRepo(mt.DB)
		pub := &recordingPublisher{}
		h := NewInquiryHandler(repository.NewInquiryRepo(mt.DB, seq), pub)

		body := `{"name":"Dana Reed","email":"dana@example.com","message":"Is the dock included?"}`
		req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(mt, h.Create(c))
		assert.Equal(mt, http.StatusCreated, rec.Code)
		require.Len(mt, pub.events, 1)
		assert.Equal(mt, int64(5), pub.events[0].InquiryID)
		assert.Equal(mt, "dana@example.com", pub.events[0].Email)
	})
}
