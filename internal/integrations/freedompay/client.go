package freedompay

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	scriptInitPayment = "init_payment.php"
	scriptGetStatus   = "get_status3.php"
	statusOK          = "ok"
)

// Config параметры мерчанта
type Config struct {
	BaseURL     string // например https://api.freedompay.kg
	MerchantID  string
	SecretKey   string
	Currency    string
	TestingMode bool
	ResultURL   string
	SuccessURL  string
	FailureURL  string
	Timeout     time.Duration
}

// Client клиент для создания ссылок на оплату FreedomPay
type Client struct {
	cfg        Config
	httpClient *http.Client
	salt       func() string
	log        Logger
}

// NewClient создает новый экземпляр клиента FreedomPay
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		salt: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
		log: log,
	}
}

// InitPayment создает платёж и возвращает ссылку на страницу оплаты
func (c *Client) InitPayment(ctx context.Context, req *PaymentRequest) (string, error) {
	if req.Amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := c.initParams(req)

	var parsed initResponse
	if err := c.post(ctx, scriptInitPayment, params, &parsed); err != nil {
		return "", err
	}

	if parsed.Status != statusOK {
		c.log.Warn("FreedomPay: payment for order=%d rejected: code=%s, description=%s",
			req.OrderID, parsed.ErrorCode, parsed.ErrorDescription)
		return "", fmt.Errorf("%w: %s", ErrPaymentRejected, parsed.ErrorDescription)
	}
	if parsed.RedirectURL == "" {
		return "", fmt.Errorf("%w: empty pg_redirect_url", ErrInvalidResponse)
	}

	c.log.Info("FreedomPay: payment created for order=%d, payment_id=%s", req.OrderID, parsed.PaymentID)
	return parsed.RedirectURL, nil
}

// GetPaymentStatus возвращает pg_payment_status платежа по ID записи (success, ok, pending, failed...)
func (c *Client) GetPaymentStatus(ctx context.Context, orderID int64) (string, error) {
	params := url.Values{}
	params.Set("pg_merchant_id", c.cfg.MerchantID)
	params.Set("pg_order_id", strconv.FormatInt(orderID, 10))
	params.Set("pg_salt", c.salt())

	var parsed statusResponse
	if err := c.post(ctx, scriptGetStatus, params, &parsed); err != nil {
		return "", err
	}

	if parsed.Status != statusOK {
		c.log.Warn("FreedomPay: status request for order=%d rejected: code=%s, description=%s",
			orderID, parsed.ErrorCode, parsed.ErrorDescription)
		return "", fmt.Errorf("%w: %s", ErrPaymentRejected, parsed.ErrorDescription)
	}
	if parsed.PaymentStatus == "" {
		return "", fmt.Errorf("%w: empty pg_payment_status", ErrInvalidResponse)
	}

	c.log.Info("FreedomPay: order=%d payment_status=%s", orderID, parsed.PaymentStatus)
	return parsed.PaymentStatus, nil
}

// post подписывает параметры, отправляет форму в script и разбирает XML ответ в out
func (c *Client) post(ctx context.Context, script string, params url.Values, out interface{}) error {
	params.Set(paramSignature, Sign(script, params, c.cfg.SecretKey))
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + script

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) initParams(req *PaymentRequest) url.Values {
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Оплата записи #%d", req.OrderID)
	}

	testing := "0"
	if c.cfg.TestingMode {
		testing = "1"
	}

	params := url.Values{}
	params.Set("pg_merchant_id", c.cfg.MerchantID)
	params.Set("pg_order_id", strconv.FormatInt(req.OrderID, 10))
	params.Set("pg_amount", strconv.FormatFloat(req.Amount, 'f', -1, 64))
	params.Set("pg_currency", c.cfg.Currency)
	params.Set("pg_description", description)
	params.Set("pg_salt", c.salt())
	params.Set("pg_testing_mode", testing)
	params.Set("pg_request_method", http.MethodPost)
	if c.cfg.ResultURL != "" {
		params.Set("pg_result_url", c.cfg.ResultURL)
	}
	if c.cfg.SuccessURL != "" {
		params.Set("pg_success_url", c.cfg.SuccessURL)
	}
	if c.cfg.FailureURL != "" {
		params.Set("pg_failure_url", c.cfg.FailureURL)
	}
	return params
}
