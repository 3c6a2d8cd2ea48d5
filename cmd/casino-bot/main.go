// casino-bot plays blackjack hands against a running server over HTTP,
// standing on 17 and hitting below it.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crew-casino/internal/config"
	"crew-casino/internal/logging"

	"github.com/rs/zerolog/log"
)

const standAt = 17

type handView struct {
	HandID      string `json:"hand_id"`
	PlayerValue int    `json:"player_value"`
}

type resolutionView struct {
	handView
	Outcome      string `json:"outcome"`
	Busted       bool   `json:"busted"`
	PayoutCC     int64  `json:"payout_cc"`
	NewBalanceCC int64  `json:"new_balance_cc"`
}

type hitUpdate struct {
	Hand       *handView       `json:"hand"`
	Resolution *resolutionView `json:"resolution"`
}

type apiError struct {
	Error string `json:"error"`
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal().Err(err).Msg("load bot config failed")
	}
	if cfg.APIKey == "" {
		log.Fatal().Msg("API_KEY is required")
	}

	c := &client{
		baseURL: cfg.ServerURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	var wins, losses, pushes int
	for i := 0; i < cfg.Hands; i++ {
		res, err := c.playHand(cfg.BetCC)
		if err != nil {
			log.Error().Err(err).Int("hand", i+1).Msg("hand failed")
			break
		}
		switch res.Outcome {
		case "win":
			wins++
		case "loss":
			losses++
		default:
			pushes++
		}
		log.Info().
			Int("hand", i+1).
			Str("outcome", res.Outcome).
			Bool("busted", res.Busted).
			Int64("payout_cc", res.PayoutCC).
			Int64("balance_cc", res.NewBalanceCC).
			Msg("hand done")
	}
	log.Info().Int("wins", wins).Int("losses", losses).Int("pushes", pushes).Msg("session done")
}

func (c *client) playHand(bet int64) (*resolutionView, error) {
	var hand handView
	if err := c.post("/api/blackjack/bet", map[string]any{"bet_cc": bet}, &hand); err != nil {
		return nil, err
	}

	for hand.PlayerValue < standAt {
		var up hitUpdate
		if err := c.post("/api/blackjack/hit", nil, &up); err != nil {
			return nil, err
		}
		if up.Resolution != nil {
			return up.Resolution, nil
		}
		if up.Hand == nil {
			return nil, fmt.Errorf("hit response had neither hand nor resolution")
		}
		hand = *up.Hand
	}

	var res resolutionView
	if err := c.post("/api/blackjack/stand", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) post(path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s: %s", path, apiErr.Error)
		}
		return fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
