package event

import "log"

// Latch запоминает первое пришедшее событие и больше не меняется.
type Latch struct {
	fired bool
	cause Event
}

func (l *Latch) OnEvent(e Event) {
	if l.fired {
		return
	}
	l.fired = true
	l.cause = e
	log.Printf("Quit requested by %s", e.Type)
}

// Fired — пришло ли хотя бы одно событие
func (l *Latch) Fired() bool {
	return l.fired
}

// Cause — событие, сработавшее первым
func (l *Latch) Cause() Event {
	return l.cause
}

// Guard пропускает ввод только после задержки, отсчитываемой с момента создания.
type Guard struct {
	delay   float64
	elapsed float64
}

// NewGuard создаёт Guard с задержкой в секундах
func NewGuard(delaySeconds float64) *Guard {
	return &Guard{delay: delaySeconds}
}

// Advance продвигает время на deltaTime секунд и сообщает, открыт ли Guard.
func (g *Guard) Advance(deltaTime float64) bool {
	if deltaTime > 0 {
		g.elapsed += deltaTime
	}
	return g.Open()
}

// Open — истекла ли задержка
func (g *Guard) Open() bool {
	return g.elapsed >= g.delay
}
