package paystack

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recargas-api/pkg/config"
)

// Verification resultado de consultar una referencia de pago.
// Amount viene en GHS (el API reporta pesewas, aquí ya dividido entre 100).
type Verification struct {
	OK     bool
	Amount decimal.Decimal
	Raw    json.RawMessage
}

// Verifier puerto de verificación de depósitos contra la pasarela de pago.
type Verifier interface {
	Verify(ctx context.Context, reference string) (Verification, error)
}

// Client implementa Verifier sobre el API de Paystack.
type Client struct {
	rc  *resty.Client
	log *zerolog.Logger
}

var _ Verifier = (*Client)(nil)

func NewClient(cfg config.PaystackConfig, log *zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc, log: log}
}

// verifyResponse forma del payload de GET /transaction/verify/{reference}.
type verifyResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"` // pesewas
	} `json:"data"`
}

// Verify consulta el estado de una referencia. El depósito cuenta como
// verificado solo cuando el envelope trae status == true Y data.status == "success".
func (c *Client) Verify(ctx context.Context, reference string) (Verification, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/transaction/verify/%s", reference))
	if err != nil {
		return Verification{}, fmt.Errorf("paystack: verify %s: %w", reference, err)
	}

	raw := json.RawMessage(resp.Body())
	var out verifyResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		c.log.Warn().Str("reference", reference).Msg("respuesta de paystack no parseable")
		return Verification{Raw: raw}, nil
	}

	ok := resp.IsSuccess() && out.Status && out.Data.Status == "success"
	amount := decimal.NewFromInt(out.Data.Amount).Div(decimal.NewFromInt(100))
	return Verification{OK: ok, Amount: amount, Raw: raw}, nil
}
