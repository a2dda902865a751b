package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	http.Client
	Addr string
}

type Article struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type articleEnvelope struct {
	Data *Article `json:"data"`
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

// GetArticle fetches an article by id. A missing article comes back as
// (nil, nil).
func (c *Client) GetArticle(id int64) (*Article, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/articles/%d", c.Addr, id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get article %d: unexpected status %d", id, resp.StatusCode)
	}

	var env articleEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}

	return env.Data, nil
}

// CreateArticle posts a new article and returns it with its assigned id.
func (c *Client) CreateArticle(title, content string) (*Article, error) {
	payload, err := json.Marshal(Article{Title: title, Content: content})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.Addr+"/articles", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create article: unexpected status %d", resp.StatusCode)
	}

	var env articleEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}

	return env.Data, nil
}
