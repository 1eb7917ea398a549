package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const hfDefaultBaseURL = "https://api-inference.huggingface.co/models"

// HuggingFaceClient calls the HuggingFace inference API for instruction-tuned
// text generation models.
type HuggingFaceClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFaceClient(apiKey, model string, timeout time.Duration) *HuggingFaceClient {
	if model == "" {
		model = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFaceClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    hfDefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

func (c *HuggingFaceClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := hfRequest{
		Inputs: instructPrompt(systemPrompt, userPrompt),
		Parameters: hfParameters{
			MaxNewTokens:   1500,
			Temperature:    0.6,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", UpstreamError{Msg: upstreamFailedText, Err: err}
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", UpstreamError{Msg: upstreamFailedText, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", UpstreamError{Msg: upstreamFailedText, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", UpstreamError{Msg: upstreamFailedText, Err: fmt.Errorf("huggingface model %s is loading", c.model)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", UpstreamError{
			Msg: upstreamFailedText,
			Err: fmt.Errorf("huggingface API error (%d): %s", resp.StatusCode, truncate(string(body), 300)),
		}
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", UpstreamError{Msg: upstreamFailedText, Err: fmt.Errorf("decode huggingface response: %w", err)}
	}
	if len(hfResp) == 0 || strings.TrimSpace(hfResp[0].GeneratedText) == "" {
		return "", errEmptyCompletion
	}
	return hfResp[0].GeneratedText, nil
}

// instructPrompt folds the system prompt into Mistral-style [INST] tags,
// since the inference endpoint takes a single input string.
func instructPrompt(systemPrompt, userPrompt string) string {
	if systemPrompt == "" {
		return "[INST] " + userPrompt + " [/INST]"
	}
	return "[INST] " + systemPrompt + "\n\n" + userPrompt + " [/INST]"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
