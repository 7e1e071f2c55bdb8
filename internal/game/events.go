package game

// Publishers, birden fazla yayıncıyı tek EventPublisher gibi sarar.
// Websocket hub'ı, redis pub/sub ve kafka köprüsü aynı anda bağlanabilir.
type Publishers []EventPublisher

func (p Publishers) Publish(roomName string, eventType string, content interface{}) {
	for _, pub := range p {
		if pub != nil {
			pub.Publish(roomName, eventType, content)
		}
	}
}

// NopPublisher, testlerde ve yayıncı bağlanmadığında kullanılır.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, interface{}) {}
