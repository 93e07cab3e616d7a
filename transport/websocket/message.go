package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type decoder func(payload json.RawMessage) (entity.Event, error)

func newDecoders() map[string]decoder {
	return map[string]decoder{
		entity.ActionClickedSquare: decodeClickedSquare,
		entity.ActionResetGame:     withoutPayload(entity.ResetGame{}),
		entity.ActionGameOver:      decodeGameOver,
		entity.ActionLeaveGame:     withoutPayload(entity.LeaveGame{}),
	}
}

func decodeClickedSquare(payload json.RawMessage) (entity.Event, error) {
	var req struct {
		Index  *int    `json:"index"`
		Symbol *string `json:"symbol"`
	}

	if err := unmarshalPayload(payload, &req); err != nil {
		return nil, err
	}

	if req.Index == nil || req.Symbol == nil {
		return nil, fmt.Errorf("%w: index and symbol are required", apperror.ErrInvalidPayload)
	}

	return entity.ClickedSquare{Index: *req.Index, Symbol: *req.Symbol}, nil
}

func decodeGameOver(payload json.RawMessage) (entity.Event, error) {
	var event entity.GameOver

	if err := unmarshalPayload(payload, &event); err != nil {
		return nil, err
	}

	return event, nil
}

func withoutPayload(event entity.Event) decoder {
	return func(json.RawMessage) (entity.Event, error) {
		return event, nil
	}
}

func unmarshalPayload(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: payload is required", apperror.ErrInvalidPayload)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}

// decodeMessage turns a raw frame into an inbound event.
func (that *Server) decodeMessage(data []byte) (entity.Event, error) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	decode, ok := that.decoders[message.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
	}

	event, err := decode(message.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", message.Action, err)
	}

	return event, nil
}

func encodeMessage(msg entity.Outbound) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: msg.Action(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
