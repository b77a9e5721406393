package amqp

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetRefreshMessage announces that the dataset behind a storage
// backend has been replaced, so cached snapshots should be dropped.
type DatasetRefreshMessage struct {
	Source    string    `json:"source"`
	Records   int64     `json:"records"`
	Timestamp time.Time `json:"timestamp"`
}

func NewDatasetRefreshMessage(source string, records int64) *DatasetRefreshMessage {
	return &DatasetRefreshMessage{
		Source:    source,
		Records:   records,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *DatasetRefreshMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// DatasetRefreshMessageFromJSON creates a message from JSON bytes
func DatasetRefreshMessageFromJSON(data []byte) (*DatasetRefreshMessage, error) {
	var msg DatasetRefreshMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
