package domain

type Message struct {
	Key 	[]byte
	Value 	[]byte
}

// PublisherPort is the egress side of the ledger event stream. The
// replay core treats publishing as fire-and-forget observability and
// never lets a publish failure alter command results.
type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}
