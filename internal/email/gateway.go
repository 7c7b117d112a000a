// Package email renders catalog templates and delivers them through the
// Brevo transactional API. Delivery is best effort: every failure is logged
// and reported as a boolean, never an error, and nothing is retried.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/config"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
	"github.com/trendiesmaroc/admin-backend/pkg/metrics"
)

const dashboardURL = "https://trendies-omega.vercel.app/admin/dashboard"

const (
	outcomeSent      = "sent"
	outcomeSimulated = "simulated"
	outcomeFailed    = "failed"
)

// Params configure the email gateway.
type Params struct {
	Config  config.BrevoConfig
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.EventMetrics
	Client  *http.Client
}

// Gateway sends templated transactional email.
type Gateway struct {
	cfg     config.BrevoConfig
	store   *store.Store
	logg    *logger.Logger
	metrics *metrics.EventMetrics
	client  *http.Client
}

// NewGateway wires the gateway dependencies.
func NewGateway(params Params) (*Gateway, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Config.Timeout}
	}
	return &Gateway{
		cfg:     params.Config,
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
		client:  client,
	}, nil
}

// Recipient addresses a single email.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRequest struct {
	Sender      Recipient   `json:"sender"`
	To          []Recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
}

// Send renders the named template for the recipient and posts it to the
// provider. Returns false when the template is missing or the provider
// rejects the message; returns true in simulate mode regardless of
// network reachability.
func (g *Gateway) Send(ctx context.Context, templateID string, to Recipient, variables map[string]string) bool {
	logCtx := g.logg.WithFields(ctx, map[string]any{
		"template":  templateID,
		"recipient": to.Email,
	})

	template, ok := g.store.TemplateByID(templateID)
	if !ok {
		g.logg.Warn(logCtx, "email template not found")
		g.record(templateID, outcomeFailed)
		return false
	}

	payload := brevoRequest{
		Sender:      Recipient{Name: g.cfg.SenderName, Email: g.cfg.SenderEmail},
		To:          []Recipient{to},
		Subject:     renderSubject(template, variables),
		HTMLContent: renderContent(template, variables),
	}

	if !g.cfg.Configured() {
		g.logg.Info(g.logg.WithField(logCtx, "subject", payload.Subject), "no provider credential, email send simulated")
		g.record(templateID, outcomeSimulated)
		return true
	}

	if g.deliver(logCtx, payload) {
		g.record(templateID, outcomeSent)
		return true
	}
	g.record(templateID, outcomeFailed)
	return false
}

func (g *Gateway) deliver(ctx context.Context, payload brevoRequest) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		g.logg.Error(ctx, "failed to encode email payload", err)
		return false
	}

	url := strings.TrimSuffix(g.cfg.BaseURL, "/") + "/smtp/email"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logg.Error(ctx, "failed to build email request", err)
		return false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logg.Error(ctx, "email provider unreachable", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		g.logg.Error(ctx, "email provider rejected message",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(detail)))
		return false
	}

	var result brevoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.MessageID != "" {
		ctx = g.logg.WithField(ctx, "message_id", result.MessageID)
	}
	g.logg.Info(ctx, "email sent")
	return true
}

func (g *Gateway) record(template, outcome string) {
	if g.metrics != nil {
		g.metrics.IncEmail(template, outcome)
	}
}

// SendSellerApproval emails the seller-approval template to the given
// seller. Returns false when the seller is unknown.
func (g *Gateway) SendSellerApproval(ctx context.Context, sellerID string) bool {
	seller, ok := g.store.UserByID(sellerID)
	if !ok {
		return false
	}

	badge := "Standard"
	if seller.BadgeLevel != nil {
		badge = string(*seller.BadgeLevel)
	}

	return g.Send(ctx, "seller-approval", Recipient{Name: seller.Name, Email: seller.Email}, map[string]string{
		"sellerName":   seller.Name,
		"badgeLevel":   badge,
		"dashboardUrl": dashboardURL,
	})
}

// SendOrderConfirmation emails the order-confirmation template to the buyer.
func (g *Gateway) SendOrderConfirmation(ctx context.Context, orderID, buyerEmail, productName, sellerName string, amount decimal.Decimal) bool {
	buyerName := localPart(buyerEmail)
	return g.Send(ctx, "order-confirmation", Recipient{Name: buyerName, Email: buyerEmail}, map[string]string{
		"buyerName":   buyerName,
		"productName": productName,
		"orderId":     orderID,
		"amount":      amount.String(),
		"sellerName":  sellerName,
	})
}

// SendReturnAccepted emails the return-accepted template to the buyer.
func (g *Gateway) SendReturnAccepted(ctx context.Context, buyerEmail, productName, returnID string) bool {
	buyerName := localPart(buyerEmail)
	return g.Send(ctx, "return-accepted", Recipient{Name: buyerName, Email: buyerEmail}, map[string]string{
		"buyerName":   buyerName,
		"productName": productName,
		"returnId":    returnID,
	})
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
