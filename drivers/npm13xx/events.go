package npm13xx

// EventGroup enumerates the device's event categories. Each group reports up
// to 8 bits through its EVENTS_SET register and is cleared as one unit.
type EventGroup uint8

const (
	EventGroupADC EventGroup = iota
	EventGroupChargerBattery
	EventGroupChargerTemp
	EventGroupChargerStatus
	EventGroupShipHold
	EventGroupVBUSVoltage
	EventGroupVBUSThermal
	EventGroupGPIO
)

// GroupCount enumerates groups for init-time masking and dispatch order.
const GroupCount = 8

// EventsAllMask selects every bit of a group.
const EventsAllMask = 0xFF

func (g EventGroup) String() string {
	switch g {
	case EventGroupADC:
		return "ADC"
	case EventGroupChargerBattery:
		return "charger battery"
	case EventGroupChargerTemp:
		return "charger temperature"
	case EventGroupChargerStatus:
		return "charger status"
	case EventGroupShipHold:
		return "ship-hold"
	case EventGroupVBUSVoltage:
		return "VBUS voltage"
	case EventGroupVBUSThermal:
		return "VBUS thermal and USB"
	case EventGroupGPIO:
		return "GPIO"
	default:
		return "unknown"
	}
}

// EventBitName names a single bit of a group for diagnostics.
func EventBitName(g EventGroup, bit uint8) string {
	if bit > 7 {
		return "unknown"
	}
	names, ok := eventBitNames[g]
	if !ok || names[bit] == "" {
		return "unknown"
	}
	return names[bit]
}

var eventBitNames = map[EventGroup][8]string{
	EventGroupADC: {
		"VBAT ready", "NTC ready", "die temp ready", "VSYS ready",
		"VSET ready", "IBAT ready", "VBUS ready", "delayed VBAT ready",
	},
	EventGroupChargerBattery: {
		"battery detected", "battery lost", "battery recharge request",
	},
	EventGroupChargerTemp: {
		"cold", "cool", "warm", "hot", "die high", "die resume",
	},
	EventGroupChargerStatus: {
		"supplement mode", "trickle started", "constant current started",
		"constant voltage started", "charging completed", "charging error",
	},
	EventGroupShipHold: {
		"button pressed", "button released", "exit ship mode", "watchdog timeout",
	},
	EventGroupVBUSVoltage: {
		"VBUS detected", "VBUS removed", "overvoltage detected",
		"overvoltage removed", "undervoltage detected", "undervoltage removed",
	},
	EventGroupVBUSThermal: {
		"warning detected", "warning removed", "shutdown detected",
		"shutdown removed", "CC1 changed", "CC2 changed",
	},
	EventGroupGPIO: {
		"GPIO0 edge", "GPIO1 edge", "GPIO2 edge", "GPIO3 edge", "GPIO4 edge",
	},
}

// EventCallback receives the full bitmask of bits that fired for one group in
// one dispatch pass. The device handle carries the consumer context.
type EventCallback func(d *Device, group EventGroup, mask uint8)

// OnEvent registers cb for group, replacing any prior registration.
// There is no unregistration; groups without a callback drop their events.
func (d *Device) OnEvent(group EventGroup, cb EventCallback) {
	if group < GroupCount {
		d.callbacks[group] = cb
	}
}

func eventRegs(g EventGroup) (set, clear, intenSet, intenClear uint16) {
	base := regEventsBase + uint16(g)*4
	return base + offEventsSet, base + offEventsClear,
		base + offIntenSet, base + offIntenClear
}

// EnableGroupEvents unmasks the given bits of a group on the device's
// interrupt output.
func (d *Device) EnableGroupEvents(g EventGroup, mask uint8) error {
	if g >= GroupCount {
		return errInvalidGroup
	}
	_, _, intenSet, _ := eventRegs(g)
	return d.writeByte(intenSet, mask)
}

// DisableGroupEvents masks the given bits of a group.
func (d *Device) DisableGroupEvents(g EventGroup, mask uint8) error {
	if g >= GroupCount {
		return errInvalidGroup
	}
	_, _, _, intenClear := eventRegs(g)
	return d.writeByte(intenClear, mask)
}

// classifyAndClear scans every group's pending bits and clears them on the
// device. Read or clear failures on one group do not stop the scan; the first
// error is returned alongside whatever was collected.
func (d *Device) classifyAndClear() ([GroupCount]uint8, error) {
	var masks [GroupCount]uint8
	var firstErr error
	for g := EventGroup(0); g < GroupCount; g++ {
		set, clear, _, _ := eventRegs(g)
		pending, err := d.readByte(set)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if pending == 0 {
			continue
		}
		masks[g] = pending
		if err := d.writeByte(clear, pending); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return masks, firstErr
}

// dispatchEvents fans collected bits out group by group in enumeration order.
// Each registered callback runs at most once per pass with the full mask.
func (d *Device) dispatchEvents(masks [GroupCount]uint8) {
	for g := EventGroup(0); g < GroupCount; g++ {
		if masks[g] == 0 {
			continue
		}
		if cb := d.callbacks[g]; cb != nil {
			cb(d, g, masks[g])
		}
	}
}
