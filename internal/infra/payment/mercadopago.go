// Package payment talks to the Mercado Pago REST API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

const (
	currencyID          = "ARS"
	statementDescriptor = "PADEL POINT"
	excludedPaymentType = "ticket"
	autoReturnApproved  = "approved"
)

type mercadoPagoClient struct {
	baseURL     string
	accessToken string
	cfg         *config.PaymentConfig
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time
}

// NewMercadoPagoClient builds the gateway client from the payment config section.
func NewMercadoPagoClient(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &mercadoPagoClient{
		baseURL:     strings.TrimRight(cfg.Payment.BaseURL, "/"),
		accessToken: cfg.Payment.AccessToken,
		cfg:         cfg.Payment,
		httpClient:  &http.Client{Timeout: cfg.Payment.Timeout},
		logger:      logger,
		now:         time.Now,
	}
}

type paymentResponse struct {
	ID           int64  `json:"id"`
	Status       any    `json:"status"`
	StatusDetail string `json:"status_detail"`
}

// GetPayment returns ErrPaymentNotFound for unknown ids and ErrGatewayUnavailable for anything unreadable.
func (c *mercadoPagoClient) GetPayment(ctx context.Context, paymentID int64) (*entity.PaymentInfo, error) {
	url := fmt.Sprintf("%s/v1/payments/%d", c.baseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[MercadoPago] Payment lookup failed", slog.Int64("payment_id", paymentID), slog.Any("error", err))

		return nil, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrPaymentNotFound
	}

	var body paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, "decode payment response: "+err.Error())
	}

	// The gateway reports some errors as a 200 with a numeric status in the body.
	if code, ok := body.Status.(float64); ok {
		if int(code) == http.StatusNotFound {
			return nil, service.ErrPaymentNotFound
		}

		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "gateway error status %d", int(code))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "gateway returned %d", resp.StatusCode)
	}

	status, _ := body.Status.(string)

	return &entity.PaymentInfo{
		ID:           body.ID,
		Status:       status,
		StatusDetail: body.StatusDetail,
	}, nil
}

type preferenceItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	CurrencyID string  `json:"currency_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type preferencePayer struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Identification struct {
		Type   string `json:"type,omitempty"`
		Number string `json:"number,omitempty"`
	} `json:"identification"`
	Address struct {
		StreetName   string `json:"street_name"`
		StreetNumber string `json:"street_number"`
		ZipCode      string `json:"zip_code"`
	} `json:"address"`
}

type preferenceIDRef struct {
	ID string `json:"id"`
}

type preferenceRequest struct {
	Items    []preferenceItem `json:"items"`
	Payer    preferencePayer  `json:"payer"`
	BackURLs struct {
		Success string `json:"success"`
		Failure string `json:"failure"`
		Pending string `json:"pending"`
	} `json:"back_urls"`
	AutoReturn     string `json:"auto_return"`
	PaymentMethods struct {
		ExcludedPaymentMethods []preferenceIDRef `json:"excluded_payment_methods"`
		ExcludedPaymentTypes   []preferenceIDRef `json:"excluded_payment_types"`
		Installments           int               `json:"installments"`
	} `json:"payment_methods"`
	NotificationURL     string `json:"notification_url,omitempty"`
	StatementDescriptor string `json:"statement_descriptor"`
	ExternalReference   string `json:"external_reference"`
	Expires             bool   `json:"expires"`
	ExpirationDateFrom  string `json:"expiration_date_from"`
	ExpirationDateTo    string `json:"expiration_date_to"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (c *mercadoPagoClient) CreatePreference(ctx context.Context, input *entity.PreferenceInput) (*entity.Preference, error) {
	body := c.buildPreference(input)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("[MercadoPago] Preference rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(detail)),
		)

		return nil, errors.Wrapf(service.ErrGatewayUnavailable, "preference rejected with status %d", resp.StatusCode)
	}

	var created preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, errors.Wrap(service.ErrGatewayUnavailable, "decode preference response: "+err.Error())
	}

	return &entity.Preference{ID: created.ID, InitPoint: created.InitPoint}, nil
}

func (c *mercadoPagoClient) buildPreference(input *entity.PreferenceInput) *preferenceRequest {
	now := c.now().UTC()
	expiresAt := input.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(c.cfg.PreferenceTTL)
	}

	body := &preferenceRequest{
		AutoReturn:          autoReturnApproved,
		NotificationURL:     c.cfg.NotificationURL,
		StatementDescriptor: statementDescriptor,
		Expires:             true,
		ExpirationDateFrom:  now.Format(time.RFC3339),
		ExpirationDateTo:    expiresAt.UTC().Format(time.RFC3339),
	}

	resultURL := strings.TrimRight(c.cfg.ClientDomain, "/") + "/payment/result"
	body.BackURLs.Success = resultURL
	body.BackURLs.Failure = resultURL
	body.BackURLs.Pending = resultURL

	body.PaymentMethods.ExcludedPaymentMethods = []preferenceIDRef{}
	body.PaymentMethods.ExcludedPaymentTypes = []preferenceIDRef{{ID: excludedPaymentType}}
	body.PaymentMethods.Installments = c.cfg.MaxInstallments

	body.Items = make([]preferenceItem, 0, len(input.Items))
	for _, item := range input.Items {
		body.Items = append(body.Items, preferenceItem{
			ID:         strconv.FormatInt(item.ID, 10),
			Title:      item.Title,
			CurrencyID: currencyID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	if user := input.User; user != nil {
		body.Payer.Name = user.Name
		body.Payer.Surname = user.Surname
		body.Payer.Email = user.Email
		body.Payer.Identification.Number = user.IDNumber
		if user.IDType != nil {
			body.Payer.Identification.Type = user.IDType.Name
		}
		body.ExternalReference = strconv.FormatInt(user.ID, 10)
	}
	if address := input.Address; address != nil {
		body.Payer.Address.StreetName = address.Street
		body.Payer.Address.StreetNumber = address.Number
		body.Payer.Address.ZipCode = address.PostalCode
		body.ExternalReference += "-" + strconv.FormatInt(address.ID, 10)
	}

	return body
}

func (c *mercadoPagoClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
}
