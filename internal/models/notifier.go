package models

// Observer receives textual status events from an order. The order holds no
// knowledge of what an observer does with the message.
type Observer interface {
	Update(message string)
}

// Notifier keeps an ordered list of observers and fans messages out to them
// synchronously. There is no unsubscribe and no buffering; each attached
// observer sees every message exactly once per Notify call, in attach order.
type Notifier struct {
	observers []Observer
}

func (n *Notifier) Attach(observer Observer) {
	n.observers = append(n.observers, observer)
}

func (n *Notifier) Notify(message string) {
	for _, observer := range n.observers {
		observer.Update(message)
	}
}
