package rest

import (
	"encoding/json"

	domainerrors "artify/internal/domain/errors"

	"github.com/pkg/errors"
)

// listEnvelope is the paginated response envelope some endpoints use. Other
// endpoints answer with a bare JSON array. These two shapes are the whole
// contract: anything else is a DecodeError rather than another fallback.
type listEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// decodeList parses a collection payload in either documented shape. For a
// bare array the reported total is the array length.
func decodeList[T any](endpoint string, raw []byte) (items []T, total, page, limit int, err error) {
	trimmed := firstByte(raw)

	switch trimmed {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, 0, 0, 0, errors.WithStack(domainerrors.NewDecodeError(endpoint, err.Error()))
		}

		return items, len(items), 0, 0, nil

	case '{':
		var env listEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, 0, 0, 0, errors.WithStack(domainerrors.NewDecodeError(endpoint, err.Error()))
		}
		if env.Data == nil {
			return nil, 0, 0, 0, errors.WithStack(domainerrors.NewDecodeError(endpoint, "object payload without data field"))
		}
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, 0, 0, 0, errors.WithStack(domainerrors.NewDecodeError(endpoint, err.Error()))
		}

		return items, env.Total, env.Page, env.Limit, nil

	default:
		return nil, 0, 0, 0, errors.WithStack(domainerrors.NewDecodeError(endpoint, "payload is neither array nor object"))
	}
}

// firstByte returns the first non-whitespace byte of a JSON payload, or zero
// for an empty body.
func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b
		}
	}

	return 0
}
