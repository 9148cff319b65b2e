package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"strive_server/apperr"
)

// Authorization modes accepted by the external authorizer.
const (
	ModeSubscription = "subscription"
	ModeAvailability = "availability"
)

// AuthorizerPayload is the request shape sent to the external authorizer.
type AuthorizerPayload struct {
	Mode    string            `json:"mode"`
	Headers map[string]string `json:"headers"`
}

// AuthorizerResult is the typed result returned by the external authorizer.
type AuthorizerResult struct {
	Sub   string `json:"sub"`
	Error string `json:"error,omitempty"`
}

// lambdaInvoker is the slice of the Lambda client used by the authorizer.
type lambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// AuthorizerClient shapes calls to the external authorization function and
// interprets its typed result. It is used for the subscription handshake and
// the one-time availability check; it never makes store calls.
type AuthorizerClient struct {
	Lambda       lambdaInvoker
	FunctionName string
}

// Authorize invokes the external authorizer with the given mode and request
// headers, returning the authorized subject id.
func (c *AuthorizerClient) Authorize(ctx context.Context, mode string, headers map[string]string) (string, error) {
	payload, err := json.Marshal(AuthorizerPayload{Mode: mode, Headers: headers})
	if err != nil {
		return "", fmt.Errorf("failed to marshal authorizer payload: %w", err)
	}

	output, err := c.Lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: &c.FunctionName,
		Payload:      payload,
	})
	if err != nil {
		log.Printf("❌ Authorizer invocation failed: %v", err)
		return "", fmt.Errorf("failed to invoke authorizer: %w", err)
	}

	var result AuthorizerResult
	if err := json.Unmarshal(output.Payload, &result); err != nil {
		return "", fmt.Errorf("failed to parse authorizer result: %w", err)
	}

	if result.Error != "" || result.Sub == "" {
		log.Printf("❌ Authorizer rejected %s request", mode)
		return "", apperr.Unauthorized("not authorized")
	}

	log.Printf("✅ Authorizer approved %s request for %s", mode, result.Sub)
	return result.Sub, nil
}
