package node

type (
	//Slot holds value resolved in positional mode, Set distinguishes unset from resolved nil
	Slot struct {
		Value interface{}
		Set   bool
	}

	//Slots represents caller owned positional cache for one pass
	Slots []Slot
)

//Reset clears slots for the next pass
func (s Slots) Reset() {
	for i := range s {
		s[i] = Slot{}
	}
}

//NewSlots creates slots
func NewSlots(size int) Slots {
	return make(Slots, size)
}
