package allen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/allen-go/allen/internal/pkg/logger"
)

const (
	// TokenPath exchanges credentials for a bearer token
	TokenPath = "/oauth2/astoken"
	// VerifyOTPPath exchanges credentials and a passcode for a bearer token
	VerifyOTPPath = "/oauth2/verifyotp"

	deviceType = "Web"
	// the platform accepts this fixed value in place of a real captcha/passcode
	placeholderOTP = "otp"
)

// login runs the credential exchange and, when the account asks for it, the
// OTP verification step.
func (c *Client) login(ctx context.Context, username, password string) (string, error) {
	url := c.scheme(false) + c.Host + TokenPath
	r := c.newRequest(ctx, resty.MethodPost, url, nil, map[string]interface{}{
		"DeviceType":  deviceType,
		"Devicetoken": c.deviceID,
		"Password":    password,
		"UserName":    username,
	})

	logger.Infof("Login request start")
	resp, err := do(r)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		logNotOkResponse(resp)
	}
	p := &Payload{URL: url, StatusCode: resp.StatusCode(), Body: resp.Body()}

	env, data, err := validateLogin(p.Body)
	if errors.Is(err, ErrInvalidUsernamePassword) {
		return "", err
	}
	if err != nil {
		return "", p.Invalid(err)
	}

	otp, err := requireOTP(env)
	if err != nil {
		return "", p.Invalid(err)
	}
	if !otp {
		token := data.String("jwt")
		if token == "" {
			return "", p.Invalid(missing("jwt"))
		}
		return token, nil
	}

	logger.Infof("Login requires OTP verification")
	studentID, _ := data.Get("StudentID")
	return c.verifyOTP(ctx, username, password, studentID)
}

func (c *Client) verifyOTP(ctx context.Context, username, password string, studentID interface{}) (string, error) {
	url := c.scheme(false) + c.Host + VerifyOTPPath
	r := c.newRequest(ctx, resty.MethodPost, url, nil, map[string]interface{}{
		"DeviceType":           deviceType,
		"Devicetoken":          c.deviceID,
		"Password":             password,
		"UserName":             username,
		"g-recaptcha-response": placeholderOTP,
		"StudentID":            studentID,
	})

	resp, err := do(r)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		logNotOkResponse(resp)
	}
	p := &Payload{URL: url, StatusCode: resp.StatusCode(), Body: resp.Body()}

	env, err := parseEnvelope(p.Body)
	if err != nil {
		return "", p.Invalid(err)
	}
	data, err := dataObject(env)
	if err != nil {
		return "", p.Invalid(err)
	}
	token := data.String("jwt")
	if token == "" {
		return "", p.Invalid(missing("jwt"))
	}
	return token, nil
}

// validateLogin checks the token response carries non-zero student and user
// identifiers. A zero identifier means the credentials were rejected.
func validateLogin(body []byte) (Object, Object, error) {
	env, err := parseEnvelope(body)
	if err != nil {
		return nil, nil, err
	}
	data, err := dataObject(env)
	if err != nil {
		return nil, nil, err
	}
	for _, key := range []string{"StudentID", "UserID"} {
		if err := requireKeys(data, key); err != nil {
			return nil, nil, err
		}
		if id, ok := data.Get(key); ok && isZero(id) {
			return nil, nil, ErrInvalidUsernamePassword
		}
	}
	return env, data, nil
}

// requireOTP reports whether the login response demands a one-time passcode:
// OTP must be non-null and the error member must read "True".
func requireOTP(env Object) (bool, error) {
	if err := requireKeys(env, envelopeError, envelopeData); err != nil {
		return false, err
	}
	data, err := dataObject(env)
	if err != nil {
		return false, err
	}
	if err := requireKeys(data, "OTP"); err != nil {
		return false, err
	}

	_, hasOTP := data.Get("OTP")
	return hasOTP && env.String(envelopeError) == "True", nil
}

// isZero is true only for a numeric zero, "0" as a string does not count.
func isZero(v interface{}) bool {
	switch v.(type) {
	case json.Number, float64, int:
		n, ok := toInt(v)
		return ok && n == 0
	}
	return false
}
