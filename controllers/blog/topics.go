package blogControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	defaultTheme     = "Thekua traditions and uses"
	defaultNumTopics = 5
)

type TopicsInput struct {
	Theme     string `json:"theme"`
	NumTopics int    `json:"num_topics"`
}

// topicsResponse represents the text-generation service response
type topicsResponse struct {
	Topics []string `json:"topics"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getTopicsConfig reads the text-generation service endpoint and key
func getTopicsConfig() (apiURL, apiKey string, err error) {
	apiURL = os.Getenv("TOPICS_API_URL")
	apiKey = os.Getenv("TOPICS_API_KEY")
	if apiURL == "" || apiKey == "" {
		return "", "", fmt.Errorf("topic generation configuration missing")
	}
	return apiURL, apiKey, nil
}

// generateTopics sends the prompt request to the text-generation service and
// returns the list of topics. No retry; a failure is reported to the caller
// as a single generic message.
func generateTopics(theme string, numTopics int) ([]string, error) {
	apiURL, apiKey, err := getTopicsConfig()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"theme":      theme,
		"num_topics": numTopics,
		"prompt": fmt.Sprintf(
			"You are a blog content creator specializing in Bihari cuisine, especially Thekua. "+
				"Generate %d blog post topics related to the theme: %s. "+
				"Return the topics as a JSON array of strings under the key \"topics\".",
			numTopics, theme,
		),
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach topic service: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("topic service error (%d): %s", resp.StatusCode, string(body))
	}

	var topicsResp topicsResponse
	if err := json.Unmarshal(body, &topicsResp); err != nil {
		return nil, fmt.Errorf("failed to parse topic service response: %v", err)
	}

	if topicsResp.Error != nil {
		return nil, fmt.Errorf("topic service error: %s", topicsResp.Error.Message)
	}

	return topicsResp.Topics, nil
}

// POST /blog/topics
// Field errors are collected and surfaced together; nothing is dispatched to
// the text-generation service unless the whole request validates.
func GenerateBlogTopics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TopicsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Theme == "" {
			input.Theme = defaultTheme
		}
		if input.NumTopics == 0 {
			input.NumTopics = defaultNumTopics
		}

		fields := gin.H{}
		if len(input.Theme) < 3 {
			fields["theme"] = "Theme must be at least 3 characters long."
		}
		if input.NumTopics < 1 {
			fields["num_topics"] = "Number of topics must be at least 1."
		} else if input.NumTopics > 10 {
			fields["num_topics"] = "Cannot generate more than 10 topics."
		}
		if len(fields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fix the errors below.", "fields": fields})
			return
		}

		topics, err := generateTopics(input.Theme, input.NumTopics)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "An unexpected error occurred on the server. Please try again later."})
			return
		}
		if len(topics) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"message": "The AI could not generate topics for this theme. Try a different one.",
				"topics":  []string{},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"topics": topics})
	}
}
