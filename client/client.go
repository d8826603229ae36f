// Package client is a typed consumer of the fitlogger REST API, one method
// per endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/models"
	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/lib/pq"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var fail struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&fail)
		return &APIError{StatusCode: resp.StatusCode, Message: fail.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Weights(ctx context.Context, userID string, number int) ([]models.Weight, error) {
	var resp struct {
		Weights []models.Weight `json:"weights"`
	}
	path := fmt.Sprintf("/api/v1/weight/%s?number=%d", userID, number)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Weights, nil
}

func (c *Client) CreateWeight(ctx context.Context, userID string, weight float64, recordedAt time.Time) (*models.Weight, error) {
	body := map[string]interface{}{
		"userId":     userID,
		"weight":     weight,
		"recordedAt": recordedAt,
	}
	var resp struct {
		Weight models.Weight `json:"weight"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/weight/", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Weight, nil
}

func (c *Client) UpdateWeight(ctx context.Context, weightID uint, weight float64) (*models.Weight, error) {
	body := map[string]interface{}{"weight": weight}
	var resp struct {
		Weight models.Weight `json:"weight"`
	}
	path := fmt.Sprintf("/api/v1/weight/%d", weightID)
	if err := c.do(ctx, http.MethodPatch, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Weight, nil
}

func (c *Client) DeleteWeight(ctx context.Context, weightID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/weight/%d", weightID), nil, nil)
}

// WorkoutDraft is the create payload for a workout entry.
type WorkoutDraft struct {
	UserID        string          `json:"userId"`
	Exercise      string          `json:"exercise"`
	Notes         *string         `json:"notes,omitempty"`
	MuscleGroup   *string         `json:"muscleGroup,omitempty"`
	MovementType  *string         `json:"movementType,omitempty"`
	TrainingStyle *string         `json:"trainingStyle,omitempty"`
	Duration      *int            `json:"duration,omitempty"`
	LiftWeight    pq.Float64Array `json:"lift_weight"`
	Reps          pq.Int64Array   `json:"reps"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

func (c *Client) CreateWorkout(ctx context.Context, draft WorkoutDraft) (*models.Exercise, error) {
	var resp struct {
		Exercise models.Exercise `json:"exercise"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/workout/", draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Exercise, nil
}

// Workouts lists the user's exercises for a type selector ("All", a
// category value, or free text for fuzzy name search).
func (c *Client) Workouts(ctx context.Context, userID, selector string) ([]models.Exercise, error) {
	var resp struct {
		Exercises []models.Exercise `json:"exercises"`
	}
	path := fmt.Sprintf("/api/v1/workout/%s/%s", userID, selector)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Exercises, nil
}

func (c *Client) UpdateWorkoutNotes(ctx context.Context, workoutID uint, notes string) (*models.Exercise, error) {
	body := map[string]interface{}{"notes": notes}
	var resp struct {
		Exercise models.Exercise `json:"exercise"`
	}
	path := fmt.Sprintf("/api/v1/workout/%d", workoutID)
	if err := c.do(ctx, http.MethodPatch, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Exercise, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, workoutID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/workout/%d", workoutID), nil, nil)
}

func (c *Client) Dashboard(ctx context.Context, userID string) (*services.DashboardSummary, error) {
	var resp struct {
		Summary services.DashboardSummary `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard/"+userID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Summary, nil
}
