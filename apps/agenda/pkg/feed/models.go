package feed

import (
	"encoding/json"
)

// RawEvent is a single undecoded record from the feed. Its shape is not
// guaranteed in any way; records only become usable after normalization.
type RawEvent = json.RawMessage
