package presentation

import (
	"errors"

	"github.com/status-im/crypto-insight-hub/coins"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

// InsightStyle selects how an insight block is displayed
type InsightStyle string

const (
	InsightStyleNormal InsightStyle = "normal"
	InsightStyleError  InsightStyle = "error"
)

// InsightBlock is a labeled text block holding generated text or a failure message
type InsightBlock struct {
	CoinID    string       `json:"coin_id"`
	Heading   string       `json:"heading"`
	Style     InsightStyle `json:"style"`
	Text      string       `json:"text"`
	Retryable bool         `json:"retryable"`
}

// NewInsightBlock routes the result of an insight fetch. A non-nil err always selects the error style.
func NewInsightBlock(coinID, text string, err error) InsightBlock {
	block := InsightBlock{
		CoinID:  coinID,
		Heading: "Insights for " + coins.Capitalize(coinID),
		Style:   InsightStyleNormal,
		Text:    text,
	}

	if err != nil {
		block.Style = InsightStyleError
		block.Text = err.Error()

		var fetchErr *interfaces.FetchError
		if errors.As(err, &fetchErr) {
			block.Retryable = fetchErr.Retryable()
		}
	}

	return block
}

// IsError reports whether the block shows a failure
func (b InsightBlock) IsError() bool {
	return b.Style == InsightStyleError
}
