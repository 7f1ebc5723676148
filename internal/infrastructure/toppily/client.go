package toppily

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/pkg/config"
)

// Endpoints del API de Toppily. La compra por package_id y la compra por
// network_id + volumen son operaciones distintas del vendor.
const (
	pathBuyByPackage = "/buy-other-package"
	pathBuyByVolume  = "/buy-data-bundle"
	pathPackages     = "/fetch-data-packages"
)

// Result desenlace de una entrega al vendor. Payload conserva la respuesta
// cruda (o el error de transporte envuelto en JSON) para auditoría. Skipped
// marca una línea que nunca llegó al vendor (sin teléfono o sin selector):
// no es un rechazo, es una línea no entregable.
type Result struct {
	OK      bool
	Skipped bool
	Payload json.RawMessage
}

// Gateway define el puerto de salida hacia el vendor de bundles.
// La implementación concreta usa el API HTTP de Toppily; para tests se inyecta un fake.
type Gateway interface {
	// Send entrega una línea del carrito: un teléfono, un selector de bundle y
	// una referencia única por intento. Nunca retorna error: los fallos de
	// transporte y los rechazos del vendor se clasifican en Result.
	Send(ctx context.Context, phone string, value entity.BundleValue, trxRef string) Result
}

// Package un paquete del catálogo del vendor (para la pantalla admin).
type Package struct {
	ID        int64  `json:"id"`
	Network   string `json:"network"`
	NetworkID int64  `json:"network_id"`
	Volume    int64  `json:"volume"`
	Status    string `json:"status"`
}

// Client implementa Gateway sobre el API de Toppily con resty: timeout
// acotado, reintentos con espera ante fallos de transporte y un bundle de
// confianza TLS opcional. Toda la configuración llega inyectada.
type Client struct {
	rc  *resty.Client
	cfg config.ToppilyConfig
	log *zerolog.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient construye el cliente del vendor con la configuración inyectada.
func NewClient(cfg config.ToppilyConfig, log *zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("Accept", "application/json")
	if cfg.RootCAFile != "" {
		// Algunos entornos (Windows, contenedores pelados) no traen la CA del
		// vendor; se permite inyectar el bundle en vez de deshabilitar TLS.
		rc.SetRootCertificate(cfg.RootCAFile)
	}
	return &Client{rc: rc, cfg: cfg, log: log}
}

// buyByPackageBody request para la compra por package_id.
type buyByPackageBody struct {
	RecipientMSISDN string `json:"recipient_msisdn"`
	PackageID       int64  `json:"package_id"`
	TrxRef          string `json:"trx_ref"`
}

// buyByVolumeBody request para la compra por network_id + volumen en MB.
type buyByVolumeBody struct {
	RecipientMSISDN string `json:"recipient_msisdn"`
	NetworkID       int64  `json:"network_id"`
	SharedBundle    int64  `json:"shared_bundle"`
	TrxRef          string `json:"trx_ref"`
}

// Send entrega una línea al vendor eligiendo el request según el selector.
// Éxito solo cuando el HTTP es 2xx Y el payload trae success == true:
// un 200 con success:false es un rechazo del vendor.
func (c *Client) Send(ctx context.Context, phone string, value entity.BundleValue, trxRef string) Result {
	var (
		path string
		body any
	)
	switch {
	case phone == "":
		return skipped("missing recipient phone")
	case value.HasPackage():
		path = pathBuyByPackage
		body = buyByPackageBody{RecipientMSISDN: phone, PackageID: value.PackageID, TrxRef: trxRef}
	case value.HasNetwork():
		path = pathBuyByVolume
		body = buyByVolumeBody{RecipientMSISDN: phone, NetworkID: value.NetworkID, SharedBundle: value.VolumeMB, TrxRef: trxRef}
	default:
		return skipped("missing bundle selector")
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		// Fallo de transporte o TLS después de agotar reintentos.
		c.log.Error().Err(err).Str("trx_ref", trxRef).Msg("llamada al vendor fallida")
		return failure(err.Error())
	}

	payload := normalizePayload(resp.Body(), resp.StatusCode())
	ok := resp.IsSuccess() && payloadSuccess(payload)
	if !ok {
		c.log.Warn().
			Int("http_status", resp.StatusCode()).
			Str("trx_ref", trxRef).
			Msg("el vendor no confirmó la compra")
	}
	return Result{OK: ok, Payload: payload}
}

// FetchPackages lista los paquetes del vendor (catálogo de referencia para admin).
func (c *Client) FetchPackages(ctx context.Context) ([]Package, error) {
	var packages []Package
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&packages).
		Get(pathPackages)
	if err != nil {
		return nil, fmt.Errorf("toppily: fetch packages: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("toppily: fetch packages: HTTP %d", resp.StatusCode())
	}
	return packages, nil
}

// normalizePayload intenta validar el JSON del vendor; si no parsea, lo envuelve
// como {"raw": ..., "http_status": ...} para no perder el diagnóstico.
func normalizePayload(body []byte, status int) json.RawMessage {
	if json.Valid(body) && len(body) > 0 {
		return json.RawMessage(body)
	}
	wrapped, _ := json.Marshal(map[string]any{
		"raw":         string(body),
		"http_status": status,
	})
	return wrapped
}

// payloadSuccess lee el indicador de éxito propio del vendor.
func payloadSuccess(payload json.RawMessage) bool {
	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return false
	}
	return envelope.Success
}

func failure(msg string) Result {
	payload, _ := json.Marshal(map[string]string{"error": msg})
	return Result{OK: false, Payload: payload}
}

// skipped clasifica una línea no entregable igual que el pre-filtro del
// checkout: no cuenta como rechazo del vendor.
func skipped(msg string) Result {
	payload, _ := json.Marshal(map[string]string{"error": msg})
	return Result{Skipped: true, Payload: payload}
}
