package config

// Default returns the built-in configuration, tuned for the AM5 motherboard
// master sheet. Callers can override any of it via Load.
func Default() Config {
	return Config{
		Workbook: Workbook{
			Sheets: []string{
				"X870E", "X670(E)", "X870", "B850", "B650(E)", "B840", "A620(A)",
			},
			Markers:           []string{"Brand", "Model"},
			MaxHeaderScanRows: 25,
			MaxParentRows:     12,
			MaxColumns:        250,
			SkipHeaderPatterns: []string{
				"Use the tabs",
				"Missing/incorrect information",
				"contact me",
			},
			IdentityColumns: []string{"Brand", "Model", "Chipset"},
		},
		Tables: Tables{
			ControllerSpeeds: map[string]float64{
				// Realtek
				"RTL8111H": 1,
				"RTL8125":  2.5,
				"RTL8126":  5,
				// Intel
				"I210-AT": 1,
				"I219-V":  1,
				"I225-V":  2.5,
				"I226-V":  2.5,
				"E3100":   2.5,
				"X710":    10,
				// Marvell AQtion
				"AQC107": 10,
				"AQC113": 10,
			},
			Abbreviations: map[string]string{
				// Vendor-branded names collapse onto the bare part number.
				"killere3100":   "e3100",
				"aqtionaqc":     "aqc",
				"realtekrtl":    "rtl",
				"dragonrtl":     "rtl",
				"intelethernet": "intel",
			},
			WirelessGenerations: []GenerationMarker{
				// Most specific first: a Wi-Fi 7 cell often also contains
				// "6GHz" or module names that would match older markers.
				{Marker: "wifi7", Score: 700},
				{Marker: "80211be", Score: 700},
				{Marker: "be200", Score: 700},
				{Marker: "wifi6e", Score: 650},
				{Marker: "ax210", Score: 650},
				{Marker: "wifi6", Score: 600},
				{Marker: "80211ax", Score: 600},
				{Marker: "wifi5", Score: 500},
				{Marker: "80211ac", Score: 500},
			},
			WirelessVendors: []VendorBonus{
				{Vendor: "Intel", Aliases: []string{"ax2", "be2", "killer"}, Bonus: 30},
				{Vendor: "Qualcomm", Aliases: []string{"qcncm", "fastconnect", "wcn"}, Bonus: 20},
				{Vendor: "MediaTek", Aliases: []string{"mt79", "rz6", "rz7"}, Bonus: 10},
				{Vendor: "Realtek", Aliases: []string{"rtl88"}, Bonus: 5},
			},
			WirelessSlotMarkers: []string{"m2", "keye", "slot", "antenna"},
			WirelessSlotScore:   100,
			VRMPremiumMarkers:   []string{"sps", "smartpowerstage", "powerstage"},
			VRMMidMarkers:       []string{"drmos"},
			CategoricalRanks: map[string]map[string]float64{
				"MOS HS": {
					"None":       0,
					"Bare":       0,
					"Small":      1,
					"Medium":     2,
					"Large":      3,
					"Extended":   4,
					"Active Fan": 5,
				},
				"BIOS Flashback": {"No": 0, "Yes": 1},
				"Clear CMOS":     {"No": 0, "Yes": 1},
			},
			IgnoreFields: []string{
				"Notes", "Details", "View", "Image", "Link",
			},
			LowerIsBetter: []string{"Price", "MSRP", "Cost"},
			SummaryMap: map[string]Summary{
				"Audio":        {Feature: "Audio Codec+DAC", Label: "Codec"},
				"Memory":       {Feature: "RAM slots", Label: "Slots"},
				"Rear I/O":     {Feature: "Total USB", Label: "Total USB"},
				"Type A":       {Feature: "USBA Total", Label: "Total"},
				"Type C":       {Feature: "USB-C Total", Label: "Total"},
				"Ethernet":     {Feature: "LAN", Label: "LAN"},
				"PCIe Storage": {Feature: "Total M.2", Label: "Total"},
			},
		},
	}
}
