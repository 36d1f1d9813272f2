// Package events defines the structured notifications the engine emits
// while processing a template, and publisher adapters for them.
//
// Events are optional observability: the engine fires them synchronously in
// token-resolution order, logs publisher errors, and never lets a publisher
// affect processing or output.
//
// Example usage:
//
//	pub := events.PublisherFunc(func(ctx context.Context, e events.Event) error {
//	    fmt.Println(e.Type, e.Token)
//	    return nil
//	})
//	eng, _ := engine.New(items, engine.WithPublisher(pub))
//
// A Redis Streams adapter is provided for shipping events off-process:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	pub := events.NewRedisPublisher(client, "itemplate.events", logger)
package events
