package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/itsUtkarshOjha/fitlogger/config"
	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// providerEvent is the subset of the identity provider's user.created
// payload we read. The full data object is kept verbatim on the user row.
type providerEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type providerUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// HandleProviderEvent ingests signed user events from the identity
// provider. Verification happens before anything touches the database.
func HandleProviderEvent(c *gin.Context) {
	secret := os.Getenv("WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server misconfigured: WEBHOOK_SECRET not set"})
		return
	}

	for _, h := range []string{"svix-id", "svix-timestamp", "svix-signature"} {
		if c.GetHeader(h) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing svix headers"})
			return
		}
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unable to read body"})
		return
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "invalid webhook secret"})
		return
	}
	if err := wh.Verify(payload, c.Request.Header); err != nil {
		log.Printf("webhook verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "signature verification failed"})
		return
	}

	var event providerEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed event payload"})
		return
	}
	var data providerUser
	if err := json.Unmarshal(event.Data, &data); err != nil || data.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed user payload"})
		return
	}

	name := strings.TrimSpace(data.FirstName + " " + data.LastName)
	email := ""
	if len(data.EmailAddresses) > 0 {
		email = data.EmailAddresses[0].EmailAddress
	}

	svc := services.NewUserService(config.DB)
	user, err := svc.UpsertFromProvider(data.ID, name, email, event.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not store user"})
		return
	}

	log.Printf("webhook %s processed for user %s", event.Type, user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"message": "User stored to the DB successfully",
	})
}
