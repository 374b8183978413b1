package catalog

import "solar_marketplace/internal/domain"

// SeedData returns the built-in equipment dataset used when no catalog
// file or sqlite store is configured, and as the initial sqlite seed.
func SeedData() Data {
	return Data{
		Panels: []domain.Panel{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-sunpower-maxeon6", Manufacturer: "SunPower", Model: "Maxeon 6 AC 440",
					Description:  "Premium high-efficiency residential module",
					Price:        352, Warranty: domain.Warranty{ProductYears: 25, PerformanceYears: 40},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 440, Efficiency: 22.8, WidthM: 1.04, HeightM: 1.87,
				TempCoefficient: -0.27, Tier: 1, AllBlack: true,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-solarmax-pro400", Manufacturer: "SolarMax", Model: "SolarMax Pro Panel 400",
					Description:  "Tier 1 monocrystalline module",
					Price:        172, Warranty: domain.Warranty{ProductYears: 25, PerformanceYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 400, Efficiency: 22.1, WidthM: 1.13, HeightM: 1.72,
				TempCoefficient: -0.29, Tier: 1, AllBlack: false,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-qcells-g10", Manufacturer: "Q CELLS", Model: "Q.PEAK DUO BLK ML-G10+ 405",
					Description:  "All-black residential module",
					Price:        190, Warranty: domain.Warranty{ProductYears: 25, PerformanceYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 405, Efficiency: 20.9, WidthM: 1.13, HeightM: 1.72,
				TempCoefficient: -0.34, Tier: 1, AllBlack: true,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-canadian-hiku6", Manufacturer: "Canadian Solar", Model: "HiKu6 CS6R-395",
					Description:  "Value monocrystalline module",
					Price:        138, Warranty: domain.Warranty{ProductYears: 12, PerformanceYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 395, Efficiency: 20.2, WidthM: 1.13, HeightM: 1.72,
				TempCoefficient: -0.35, Tier: 1, AllBlack: false,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-trina-vertexs", Manufacturer: "Trina Solar", Model: "Vertex S 390",
					Description:  "Compact residential module",
					Price:        128, Warranty: domain.Warranty{ProductYears: 15, PerformanceYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 390, Efficiency: 20.0, WidthM: 1.1, HeightM: 1.75,
				TempCoefficient: -0.36, Tier: 2, AllBlack: false,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-jinko-tiger380", Manufacturer: "JinkoSolar", Model: "Tiger Neo 380",
					Description:  "Budget n-type module",
					Price:        110, Warranty: domain.Warranty{ProductYears: 12, PerformanceYears: 25},
					Availability: domain.AvailabilityBackorder,
				},
				Type:    domain.PanelMonocrystalline,
				Wattage: 380, Efficiency: 19.6, WidthM: 1.1, HeightM: 1.72,
				TempCoefficient: -0.36, Tier: 2, AllBlack: false,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "pnl-valuegen-350", Manufacturer: "ValueGen", Model: "VG-350P",
					Description:  "Entry-level polycrystalline module",
					Price:        84, Warranty: domain.Warranty{ProductYears: 10, PerformanceYears: 20},
					Availability: domain.AvailabilityInStock,
				},
				Type:    domain.PanelPolycrystalline,
				Wattage: 350, Efficiency: 17.8, WidthM: 1.0, HeightM: 1.96,
				TempCoefficient: -0.40, Tier: 3, AllBlack: false,
			},
		},
		Inverters: []domain.Inverter{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "inv-sma-sunnyboy50", Manufacturer: "SMA", Model: "Sunny Boy 5.0",
					Description:  "5 kW residential string inverter",
					Price:        1650, Warranty: domain.Warranty{ProductYears: 10},
					Availability: domain.AvailabilityInStock,
				},
				Capacity: 5000, CECEfficiency: 96.5, Type: domain.InverterString, MPPTChannels: 2,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "inv-solaredge-se7600", Manufacturer: "SolarEdge", Model: "SE7600H-US",
					Description:  "7.6 kW HD-Wave inverter with power optimizers",
					Price:        2150, Warranty: domain.Warranty{ProductYears: 12},
					Availability: domain.AvailabilityInStock,
				},
				Capacity: 7600, CECEfficiency: 99.0, Type: domain.InverterPowerOptimizer, BatteryReady: true, MPPTChannels: 1,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "inv-fronius-primo82", Manufacturer: "Fronius", Model: "Primo 8.2-1",
					Description:  "8.2 kW snap-in string inverter",
					Price:        2380, Warranty: domain.Warranty{ProductYears: 10},
					Availability: domain.AvailabilityInStock,
				},
				Capacity: 8200, CECEfficiency: 96.7, Type: domain.InverterString, MPPTChannels: 2,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "inv-enphase-iq8plus", Manufacturer: "Enphase", Model: "IQ8+ Microinverter",
					Description:  "Per-panel microinverter, 290 VA",
					Price:        210, Warranty: domain.Warranty{ProductYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				Capacity: 290, CECEfficiency: 97.0, Type: domain.InverterMicro, BatteryReady: true, MPPTChannels: 1,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "inv-growatt-min10k", Manufacturer: "Growatt", Model: "MIN 10000TL-XH",
					Description:  "10 kW hybrid string inverter",
					Price:        2050, Warranty: domain.Warranty{ProductYears: 10},
					Availability: domain.AvailabilityBackorder,
				},
				Capacity: 10000, CECEfficiency: 97.5, Type: domain.InverterString, BatteryReady: true, MPPTChannels: 3,
			},
		},
		Batteries: []domain.Battery{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "bat-tesla-pw3", Manufacturer: "Tesla", Model: "Powerwall 3",
					Description:  "Integrated AC-coupled home battery",
					Price:        9200, Warranty: domain.Warranty{ProductYears: 10},
					Availability: domain.AvailabilityInStock,
				},
				CapacityKWh: 13.5, Technology: "lfp", Coupling: domain.CouplingAC, RoundTripEfficiency: 90,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "bat-enphase-5p", Manufacturer: "Enphase", Model: "IQ Battery 5P",
					Description:  "Modular AC-coupled battery",
					Price:        4100, Warranty: domain.Warranty{ProductYears: 15},
					Availability: domain.AvailabilityInStock,
				},
				CapacityKWh: 5.0, Technology: "lfp", Coupling: domain.CouplingAC, RoundTripEfficiency: 89,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "bat-lg-resu10", Manufacturer: "LG Energy Solution", Model: "RESU10H Prime",
					Description:  "DC-coupled high-voltage battery",
					Price:        6400, Warranty: domain.Warranty{ProductYears: 10},
					Availability: domain.AvailabilityInStock,
				},
				CapacityKWh: 9.6, Technology: "nmc", Coupling: domain.CouplingDC, RoundTripEfficiency: 94,
			},
		},
		Racking: []domain.RackingSystem{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "rck-ironridge-xr100", Manufacturer: "IronRidge", Model: "XR100",
					Description:  "Rail-based pitched roof mounting",
					Price:        18, Warranty: domain.Warranty{ProductYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				MountType: "flush", RoofTypes: []string{"composite-shingle", "tile", "metal"}, WindRatingKPH: 257,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "rck-unirac-rmdt", Manufacturer: "Unirac", Model: "RM DT",
					Description:  "Ballasted dual-tilt flat roof system",
					Price:        24, Warranty: domain.Warranty{ProductYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				MountType: "ballasted", RoofTypes: []string{"flat"}, WindRatingKPH: 209,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "rck-s5-pvkit", Manufacturer: "S-5!", Model: "PVKIT 2.0",
					Description:  "Direct-attach clamps for standing seam metal",
					Price:        12, Warranty: domain.Warranty{ProductYears: 25},
					Availability: domain.AvailabilityInStock,
				},
				MountType: "standing-seam", RoofTypes: []string{"standing-seam-metal"}, WindRatingKPH: 241,
			},
		},
		Electrical: []domain.ElectricalComponent{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "ele-midnite-mnpv6", Manufacturer: "MidNite Solar", Model: "MNPV6",
					Description:  "6-position PV combiner box",
					Price:        128, Warranty: domain.Warranty{ProductYears: 5},
					Availability: domain.AvailabilityInStock,
				},
				ComponentType: "combiner", AmpRating: 120, VoltageRating: 600,
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "ele-square-d-du222", Manufacturer: "Square D", Model: "DU222RB",
					Description:  "60 A non-fused AC disconnect",
					Price:        45, Warranty: domain.Warranty{ProductYears: 2},
					Availability: domain.AvailabilityInStock,
				},
				ComponentType: "disconnect", AmpRating: 60, VoltageRating: 240,
			},
		},
		Monitoring: []domain.MonitoringDevice{
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "mon-solaredge-wifi", Manufacturer: "SolarEdge", Model: "Wi-Fi Gateway",
					Description:  "System-level production monitoring",
					Price:        95, Warranty: domain.Warranty{ProductYears: 5},
					Availability: domain.AvailabilityInStock,
				},
				TierLevel: domain.MonitoringBasic, Granularity: "system",
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "mon-enphase-envoy", Manufacturer: "Enphase", Model: "Envoy-S Metered",
					Description:  "Per-panel production and consumption metering",
					Price:        420, Warranty: domain.Warranty{ProductYears: 5},
					Availability: domain.AvailabilityInStock,
				},
				TierLevel: domain.MonitoringAdvanced, Granularity: "panel",
			},
			{
				EquipmentBase: domain.EquipmentBase{
					ID: "mon-also-energy", Manufacturer: "AlsoEnergy", Model: "PowerTrack Pro",
					Description:  "Installer-grade fleet monitoring with alerting",
					Price:        1150, Warranty: domain.Warranty{ProductYears: 5},
					Availability: domain.AvailabilityBackorder,
				},
				TierLevel: domain.MonitoringProfessional, Granularity: "string",
			},
		},
	}
}
