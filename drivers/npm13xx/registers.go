package npm13xx

// Register addresses. The device exposes byte-wide registers behind a 16-bit
// address; the high byte selects the functional block.

// MAIN block. Each event group owns a 4-register stride:
// EVENTS_SET (read pending), EVENTS_CLEAR (write 1 to clear),
// INTEN_SET and INTEN_CLEAR.
const (
	regTaskSWReset uint16 = 0x0001

	regEventsBase  uint16 = 0x0002
	offEventsSet          = 0
	offEventsClear        = 1
	offIntenSet           = 2
	offIntenClear         = 3
)

// VBUSIN block.
const (
	regVBUSTaskUpdateILim uint16 = 0x0200
	regVBUSILim           uint16 = 0x0201
	regVBUSStatus         uint16 = 0x0207
)

// CHARGER block.
const (
	regChargerEnableSet uint16 = 0x0304
	regChargerEnableClr uint16 = 0x0305
	regChargerISetMSB   uint16 = 0x0308
	regChargerISetLSB   uint16 = 0x0309
	regChargerVTerm     uint16 = 0x030C
	regChargerVTermR    uint16 = 0x030D
	regChargerVTrickle  uint16 = 0x030E
	regChargerITermSel  uint16 = 0x030F

	// NTC threshold codes, MSB/LSB pairs: cold, cool, warm, hot.
	regChargerNTCColdMSB uint16 = 0x0310
	regChargerNTCColdLSB uint16 = 0x0311
	regChargerNTCCoolMSB uint16 = 0x0312
	regChargerNTCCoolLSB uint16 = 0x0313
	regChargerNTCWarmMSB uint16 = 0x0314
	regChargerNTCWarmLSB uint16 = 0x0315
	regChargerNTCHotMSB  uint16 = 0x0316
	regChargerNTCHotLSB  uint16 = 0x0317

	regChargerStatus uint16 = 0x0334
)

// BUCK block. Per-instance enable tasks come in SET/CLR pairs.
const (
	regBuckEnaBase    uint16 = 0x0400 // + 2*idx: SET, then CLR
	regBuckVOutBase   uint16 = 0x0408 // + 2*idx: normal, then retention
	regBuckSwCtrlSel  uint16 = 0x040F // bit per buck: VOUT register owns the target
	regBuckCtrl0      uint16 = 0x0415 // active discharge bits 0..1
	regBuckGPIOBase   uint16 = 0x0418 // + idx: pin select | invert bit
	regBuckStatus     uint16 = 0x0434 // power-good bits 0..1
	buckGPIOInvertBit        = 0x08
)

// ADC block.
const (
	regADCTaskVBAT      uint16 = 0x0500
	regADCTaskDieTemp   uint16 = 0x0501
	regADCNTCRSel       uint16 = 0x0508
	regADCMeasStatus    uint16 = 0x0510 // ready bits; invalid bits in high nibble
	regADCVBATResultMSB uint16 = 0x0511
	regADCTempResultMSB uint16 = 0x0512
	regADCResultLSBs    uint16 = 0x0515 // VBAT bits 1:0, die temp bits 3:2
)

// GPIO block, 5 pins.
const (
	regGPIOModeBase  uint16 = 0x0600 // + pin
	regGPIODriveBase uint16 = 0x0605 // + pin, 0 = 1 mA, 1 = 6 mA
	regGPIOPullUp    uint16 = 0x060A // + pin
	regGPIOPullDown  uint16 = 0x060F // + pin
)

// TIMER block.
const (
	regTimerSet       uint16 = 0x0700
	regTimerClear     uint16 = 0x0701
	regTimerTargetHi  uint16 = 0x0703
	regTimerTargetMid uint16 = 0x0704
	regTimerTargetLo  uint16 = 0x0705
	regTimerConfig    uint16 = 0x0706
)

// LDSW block, 2 load switches, each usable as an LDO. Per-instance enable
// tasks come in SET/CLR pairs like the bucks.
const (
	regLdswEnaBase       uint16 = 0x0800 // + 2*idx: SET, then CLR
	regLdswStatus        uint16 = 0x0804 // power-up bits: LDSW, LDO pair per instance
	regLdswGPIOBase      uint16 = 0x0805 // + idx: pin select | invert bit
	regLdswConfig        uint16 = 0x0807 // active discharge bits 0..1, soft-start enable bits 2..3
	regLdswSoftStartBase uint16 = 0x0808 // + idx: soft-start current code
	regLdswLDOSel        uint16 = 0x080A // bit per instance: 1 = LDO mode
	regLdswVOutBase      uint16 = 0x080C // + idx: LDO output voltage code

	ldswGPIOInvertBit      = 0x08
	ldswConfigSoftStartPos = 2
)

// POF block.
const (
	regPOFConfig uint16 = 0x0900

	pofEnableMask   = 0x01
	pofPolarityMask = 0x02
	pofThresholdPos = 2
)

// LEDDRV block, 3 drivers.
const (
	regLEDModeBase uint16 = 0x0A00 // + idx
	regLEDSetBase  uint16 = 0x0A03 // + idx, host mode only
	regLEDClrBase  uint16 = 0x0A06 // + idx
)

// SHPHLD block.
const (
	regShipTaskHibernate uint16 = 0x0B00
	regShipTaskShip      uint16 = 0x0B02
	regShipConfig        uint16 = 0x0B04
	regShipLPResetConfig uint16 = 0x0B06
)

// ERRLOG block. Sticky until the clear task is issued.
const (
	regErrlogTaskClear  uint16 = 0x0E00
	regErrlogRstCause   uint16 = 0x0E01
	regErrlogChargerErr uint16 = 0x0E02
	regErrlogSensorErr  uint16 = 0x0E03
)
