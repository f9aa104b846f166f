package service

import (
	"context"
	"github.com/kahvecikaan/socialposts/internal/openai"
)

type fakeChatClient struct {
	content  string
	err      error
	requests []openai.ChatCompletionRequest
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &openai.ChatCompletionResponse{
		Model: req.Model,
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: f.content}, FinishReason: "stop"},
		},
	}, nil
}

type fakeResponsesClient struct {
	text     string
	err      error
	requests []openai.ResponseRequest
}

func (f *fakeResponsesClient) CreateResponse(ctx context.Context, req openai.ResponseRequest) (*openai.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &openai.Response{
		Status: "completed",
		Output: []openai.OutputItem{
			{Type: "web_search_call"},
			{Type: "message", Role: "assistant", Content: []openai.OutputContent{{Type: "output_text", Text: f.text}}},
		},
	}, nil
}
