package event

const (
	KeyPressed         EventType = "KeyPressed"         // нажата клавиша
	MouseButtonPressed EventType = "MouseButtonPressed" // нажата кнопка мыши
	WindowClosing      EventType = "WindowClosing"      // окно закрывается
	QuitRequested      EventType = "QuitRequested"
)

// QuitEvents — события, по которым демка завершается
var QuitEvents = []EventType{KeyPressed, MouseButtonPressed, WindowClosing, QuitRequested}
