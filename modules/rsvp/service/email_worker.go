package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"campus-pulse/core/cache"
	"campus-pulse/core/config"
	"campus-pulse/core/constants"
	"campus-pulse/core/logger"
	"campus-pulse/core/queue"
	"campus-pulse/core/utils"
	"campus-pulse/modules/rsvp/entity"
	"campus-pulse/modules/rsvp/repository"

	"github.com/hibiken/asynq"
)

const confirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
	<h2>You're going to {{.EventTitle}}!</h2>
	<p>Hi {{.Name}},</p>
	<p>Your spot is confirmed. Here are the details:</p>
	<ul>
		<li><strong>Event:</strong> {{.EventTitle}}</li>
		{{if .Location}}<li><strong>Where:</strong> {{.Location}}</li>{{end}}
		{{if .When}}<li><strong>When:</strong> {{.When}}</li>{{end}}
	</ul>
	{{if .HasInvite}}<p>A calendar invite is attached so you don't miss it.</p>{{end}}
	<p>See you there!</p>
</body>
</html>`

var confirmationTmpl = template.Must(template.New("rsvp_confirmation").Parse(confirmationTemplate))

type confirmationData struct {
	Name       string
	EventTitle string
	Location   string
	When       string
	HasInvite  bool
}

// EmailWorker drains confirmation-email tasks. Everything it does is
// idempotent: the sent flag on the rsvp row, the redis guard, and the asynq
// task id all converge on at most one email per reservation.
type EmailWorker struct {
	repo  repository.RsvpRepositoryInterface
	cache cache.Cache
}

func NewEmailWorker(repo repository.RsvpRepositoryInterface, cache cache.Cache) *EmailWorker {
	return &EmailWorker{repo: repo, cache: cache}
}

func (w *EmailWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskTypeRsvpEmail, w.HandleRsvpEmail)
}

func (w *EmailWorker) HandleRsvpEmail(ctx context.Context, t *asynq.Task) error {
	var payload queue.RsvpEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("EmailWorker:HandleRsvpEmail:Payload", err)
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	details, err := w.repo.GetDetails(ctx, payload.RsvpID)
	if err != nil {
		return err
	}
	if details == nil {
		// Reservation cancelled before the task ran; nothing to send.
		logger.Info("EmailWorker:HandleRsvpEmail:Gone", "rsvp_id", payload.RsvpID)
		return nil
	}
	if details.EmailSent {
		return nil
	}

	guardKey := constants.RedisKeyRsvpEmailSent + payload.RsvpID.String()
	acquired, guardErr := w.cache.SetOnce(ctx, guardKey, 24*time.Hour)
	if guardErr != nil {
		logger.Warn("EmailWorker:HandleRsvpEmail:Guard", guardErr)
	} else if !acquired {
		return nil
	}

	if err = w.send(details); err != nil {
		// Release the guard so the retry is not locked out.
		if guardErr == nil {
			_ = w.cache.Delete(ctx, guardKey)
		}
		logger.Error("EmailWorker:HandleRsvpEmail:Send", err)
		return err
	}

	if _, err = w.repo.MarkEmailSent(ctx, payload.RsvpID); err != nil {
		return err
	}

	logger.Info("EmailWorker:HandleRsvpEmail:Sent", "rsvp_id", payload.RsvpID)
	return nil
}

func (w *EmailWorker) send(details *entity.RsvpDetails) error {
	title := "Unknown event"
	if details.EventTitle != nil && *details.EventTitle != "" {
		title = *details.EventTitle
	}

	data := confirmationData{
		Name:       details.UserFullName,
		EventTitle: title,
	}
	if details.EventLocation != nil {
		data.Location = *details.EventLocation
	}

	var attachments []utils.Attachment
	if details.EventStartTime != nil {
		start := *details.EventStartTime
		end := start.Add(constants.DefaultEventDuration)
		if details.EventEndTime != nil {
			end = *details.EventEndTime
		}

		data.When = start.Format("Monday, January 2, 2006 at 3:04 PM")
		data.HasInvite = true

		cfg, ok := config.GetSafe()
		if !ok {
			return fmt.Errorf("config not initialized")
		}

		description := ""
		if details.EventDesc != nil {
			description = *details.EventDesc
		}

		invite := buildCalendarInvite(inviteDetails{
			UID:         details.ID.String(),
			Title:       title,
			Description: description,
			Location:    data.Location,
			Start:       start,
			End:         end,
			Stamp:       time.Now(),
		}, cfg.Calendar)

		attachments = append(attachments, utils.Attachment{
			Filename:    "invite.ics",
			ContentType: "text/calendar; method=PUBLISH",
			Body:        invite,
		})
	}

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return err
	}

	subject := "RSVP confirmed: " + title
	return utils.SendHTMLEmail([]string{details.UserEmail}, subject, body.String(), attachments...)
}
