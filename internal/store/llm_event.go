package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/sproutedu/sprout/ent"
)

// eventRepo implements EventRepo backed by ent and the shared event
// sequence.
type eventRepo struct {
	client *ent.Client
	seq    *eventSequence
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRow, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	byModel := make(map[string]*LLMUsageRow)
	for _, e := range rows {
		key := e.Provider + "/" + e.Model
		agg, ok := byModel[key]
		if !ok {
			agg = &LLMUsageRow{Provider: e.Provider, Model: e.Model}
			byModel[key] = agg
		}
		agg.Requests++
		if !e.Success {
			agg.Failures++
		}
		agg.InputTokens += e.InputTokens
		agg.OutputTokens += e.OutputTokens
	}

	out := make([]LLMUsageRow, 0, len(byModel))
	for _, agg := range byModel {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Provider != out[j].Provider {
			return out[i].Provider < out[j].Provider
		}
		return out[i].Model < out[j].Model
	})
	return out, nil
}
