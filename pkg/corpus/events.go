package corpus

// DocumentIndexedEvent is published on the ingest topic after every document
// finishes embedding, so observers (stats consumer, logs) can follow build
// progress without coupling to the index internals.
type DocumentIndexedEvent struct {
	DocumentId string `json:"document_id"`
	Chunks     int    `json:"chunks"`
}
