package action

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
	"time"
)

type fakePostService struct {
	posts       []domain.SocialMediaPost
	description string
	err         error
	products    []domain.Product
	names       []string
}

func (f *fakePostService) GeneratePosts(ctx context.Context, product domain.Product) ([]domain.SocialMediaPost, error) {
	f.products = append(f.products, product)
	return f.posts, f.err
}

func (f *fakePostService) GenerateDescription(ctx context.Context, productName string, language domain.Language) (string, error) {
	f.names = append(f.names, productName)
	return f.description, f.err
}

func newActions(ps *fakePostService) *Actions {
	a := New(ps, domain.NewValidation(), hclog.NewNullLogger())
	a.now = func() time.Time { return time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC) }
	return a
}

const validBody = `{"product":{"name":"EcoBottle","description":"Reusable insulated water bottle","price":29.99,"platforms":["twitter"]}}`

func TestGeneratePosts(t *testing.T) {
	ps := &fakePostService{posts: []domain.SocialMediaPost{
		{Platform: domain.PlatformTwitter, Content: "one"},
		{Platform: domain.PlatformTwitter, Content: "two"},
	}}

	resp := newActions(ps).GeneratePosts(context.Background(), json.RawMessage(validBody))

	require.True(t, resp.Success)
	require.NotNil(t, resp.GeneratedPosts)
	assert.Nil(t, resp.Failure)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	require.Len(t, ps.products, 1)
	product := ps.products[0]
	assert.Equal(t, "EcoBottle", product.Name)
	assert.Equal(t, "29.99", product.Price.StringFixed(2))
	assert.Equal(t, domain.ToneProfessional, product.Tone)
	assert.Equal(t, domain.DefaultLanguage, product.Language)
	assert.Equal(t, []domain.Platform{domain.PlatformTwitter}, product.Platforms)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"posts": [{"platform":"twitter","content":"one"},{"platform":"twitter","content":"two"}],
		"generatedAt": "2026-10-14T10:00:00Z",
		"count": 2
	}`, string(data))
}

func TestGeneratePostsValidation(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{"Negative price", `{"product":{"name":"EcoBottle","description":"Reusable insulated water bottle","price":-5}}`, "product.price"},
		{"String price", `{"product":{"name":"EcoBottle","description":"Reusable insulated water bottle","price":"cheap"}}`, "product"},
		{"Name is a number", `{"product":{"name":42,"description":"Reusable insulated water bottle","price":5}}`, "product.name"},
		{"Missing product", `{}`, "product"},
		{"Not JSON", `nope`, "product"},
		{"Empty body", ``, "product"},
		{"Unknown platform", `{"product":{"name":"EcoBottle","description":"Reusable insulated water bottle","price":5,"platforms":["myspace"]}}`, "product.platforms[0]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps := &fakePostService{}

			resp := newActions(ps).GeneratePosts(context.Background(), json.RawMessage(tc.body))

			assert.False(t, resp.Success)
			require.NotNil(t, resp.Failure)
			assert.Nil(t, resp.GeneratedPosts)
			assert.Equal(t, domain.CodeValidation, resp.Code)
			assert.Equal(t, "Invalid product data", resp.Error)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

			details, ok := resp.Details.(domain.ValidationErrors)
			require.True(t, ok)
			require.NotEmpty(t, details)
			assert.Equal(t, tc.field, details[0].Field)

			assert.Empty(t, ps.products, "the model must not be called for invalid input")
		})
	}
}

func TestGeneratePostsFailures(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    domain.ErrorCode
		message string
		status  int
	}{
		{
			name:    "Parse error",
			err:     domain.NewAppError("OpenAI response missing posts array", domain.CodeParse, http.StatusBadGateway, nil),
			code:    domain.CodeParse,
			message: "OpenAI response missing posts array",
			status:  http.StatusBadGateway,
		},
		{
			name:    "Rate limit",
			err:     fmt.Errorf("wrapped: %w", domain.NewAppError("slow down", domain.CodeOpenAIRate, http.StatusTooManyRequests, nil)),
			code:    domain.CodeOpenAIRate,
			message: "slow down",
			status:  http.StatusTooManyRequests,
		},
		{
			name:    "Unclassified",
			err:     fmt.Errorf("boom"),
			code:    domain.CodeInternal,
			message: "An unexpected error occurred",
			status:  http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := newActions(&fakePostService{err: tc.err}).GeneratePosts(context.Background(), json.RawMessage(validBody))

			assert.False(t, resp.Success)
			require.NotNil(t, resp.Failure)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, tc.message, resp.Error)
			assert.Equal(t, tc.status, resp.StatusCode())
		})
	}
}

func TestFailureJSON(t *testing.T) {
	resp := newActions(&fakePostService{err: fmt.Errorf("boom")}).GeneratePosts(context.Background(), json.RawMessage(validBody))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"An unexpected error occurred","code":"INTERNAL_ERROR"}`, string(data))
}

func TestGenerateDescription(t *testing.T) {
	ps := &fakePostService{description: "Keeps drinks cold."}

	resp := newActions(ps).GenerateDescription(context.Background(), "  EcoBottle ", "")

	require.True(t, resp.Success)
	assert.Equal(t, "Keeps drinks cold.", resp.Description)
	assert.Equal(t, []string{"EcoBottle"}, ps.names)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"description":"Keeps drinks cold."}`, string(data))
}

func TestGenerateDescriptionValidation(t *testing.T) {
	testCases := []struct {
		name        string
		productName string
		language    domain.Language
		field       string
	}{
		{"Empty name", "", "en", "name"},
		{"Whitespace name", "   ", "en", "name"},
		{"Unknown language", "EcoBottle", "xx", "language"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps := &fakePostService{}

			resp := newActions(ps).GenerateDescription(context.Background(), tc.productName, tc.language)

			assert.False(t, resp.Success)
			require.NotNil(t, resp.Failure)
			assert.Equal(t, domain.CodeValidation, resp.Code)
			details := resp.Details.(domain.ValidationErrors)
			assert.Equal(t, tc.field, details[0].Field)
			assert.Empty(t, ps.names)
		})
	}
}

func TestGenerateDescriptionFailure(t *testing.T) {
	ps := &fakePostService{err: domain.NewAppError("Invalid OpenAI API key", domain.CodeOpenAIInvalid, http.StatusUnauthorized, nil)}

	resp := newActions(ps).GenerateDescription(context.Background(), "EcoBottle", "en")

	assert.False(t, resp.Success)
	assert.Equal(t, domain.CodeOpenAIInvalid, resp.Code)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}
