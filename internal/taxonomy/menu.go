package taxonomy

// DefaultMenu returns the telecom sector hierarchy. Content is static
// configuration: display names, icons, and the semantic scope text fed to the
// classifier as context.
func DefaultMenu() *Menu {
	return &Menu{
		SectorOrder: []string{"1", "2", "3", "4", "5"},
		Sectors: map[string]Sector{
			"1": {
				Key:         "1",
				Name:        "Mobile Services (Prepaid / Postpaid)",
				Icon:        "📱",
				Description: "Covers all issues related to mobile phone services including voice calls, SMS, mobile data, SIM cards, prepaid recharges, postpaid billing, roaming, number portability, and mobile network coverage.",
				SubprocessOrder: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
				Subprocesses: map[string]Subprocess{
					"1": {
						Name:          "Billing & Payment Issues",
						SemanticScope: "Unexpected charges, wrong bill amount, double billing, payment failed but money deducted, recharge not credited, balance deducted without usage, auto-renewal charged, EMI issues on phone, refund not received for telecom services, incorrect tax on bill, bill dispute",
					},
					"2": {
						Name:          "Network / Signal Problems",
						SemanticScope: "No signal, weak signal, call drops, poor network coverage, network congestion, unable to make/receive calls, tower issue, dead zone, indoor coverage problem, 4G/5G not available, network outage in area",
					},
					"3": {
						Name:          "SIM Card & Activation",
						SemanticScope: "New SIM not activated, SIM blocked, SIM damaged, SIM swap, eSIM activation, lost SIM replacement, SIM not detected, PUK locked, KYC verification pending, Aadhaar linking with SIM, SIM upgrade to 4G/5G",
					},
					"4": {
						Name:          "Data Plan & Recharge Issues",
						SemanticScope: "Data not working after recharge, wrong plan activated, data exhausted too quickly, unable to recharge, recharge failed but amount debited, validity not extended, data speed throttled, unlimited plan not giving unlimited data, add-on pack issues, coupon/promo code not working",
					},
					"5": {
						Name:          "International Roaming",
						SemanticScope: "Roaming not working abroad, high roaming charges, incoming calls charged during roaming, data roaming activation, roaming pack not applied, unable to call from foreign country, roaming bill shock, ISD/STD calling issues",
					},
					"6": {
						Name:          "Mobile Number Portability (MNP)",
						SemanticScope: "Want to switch operator, MNP request rejected, porting delay, UPC code not received, number lost during porting, services disrupted after porting, porting to another network, port-out issues",
					},
					"7": {
						Name:          "Call / SMS Failures",
						SemanticScope: "Unable to make calls, calls not connecting, one-way audio, SMS not being delivered, SMS not received, OTP not coming, call going to voicemail, DND (Do Not Disturb) issues, spam calls, call forwarding not working, conference call issues",
					},
					"8": {Name: OthersName},
				},
			},
			"2": {
				Key:         "2",
				Name:        "Broadband / Internet Services",
				Icon:        "🌐",
				Description: "Covers all issues related to wired/wireless broadband, fiber internet, DSL connections, WiFi, and home/office internet services.",
				SubprocessOrder: []string{"1", "2", "3", "4", "5", "6", "7"},
				Subprocesses: map[string]Subprocess{
					"1": {
						Name:          "Slow Speed / No Connectivity",
						SemanticScope: "Internet too slow, speed not matching plan, buffering while streaming, downloads very slow, no internet connection, WiFi connected but no internet, speed drops at night, latency/ping too high, speed test showing low results, bandwidth issue",
					},
					"2": {
						Name:          "Frequent Disconnections",
						SemanticScope: "Internet keeps disconnecting, connection drops every few minutes, unstable connection, intermittent connectivity, WiFi drops frequently, connection resets, have to restart router repeatedly, disconnects during video calls",
					},
					"3": {
						Name:          "Billing & Plan Issues",
						SemanticScope: "Wrong broadband bill, overcharged, plan upgrade/downgrade issues, FUP limit reached, auto-debit failed, payment not reflected, want to change plan, hidden charges, installation charges disputed, security deposit refund",
					},
					"4": {
						Name:          "New Connection / Installation",
						SemanticScope: "New broadband connection request, installation delayed, technician not showing up, fiber cable not laid, connection pending, availability check, shift connection to new address, relocation of broadband",
					},
					"5": {
						Name:          "Router / Equipment Problems",
						SemanticScope: "Router not working, WiFi router faulty, modem blinking red, ONT device issue, router overheating, need router replacement, firmware update problem, WiFi range too short, LAN port not working, equipment return",
					},
					"6": {
						Name:          "IP Address / DNS Issues",
						SemanticScope: "Cannot access certain websites, DNS resolution failure, need static IP, IP blocked, website loading error, proxy issues, VPN not working over broadband, port forwarding needed",
					},
					"7": {Name: OthersName},
				},
			},
			"3": {
				Key:         "3",
				Name:        "DTH / Cable TV Services",
				Icon:        "📺",
				Description: "Covers all issues related to Direct-To-Home television, cable TV, set-top boxes, and TV channel subscriptions.",
				SubprocessOrder: []string{"1", "2", "3", "4", "5", "6"},
				Subprocesses: map[string]Subprocess{
					"1": {
						Name:          "Channel Not Working / Missing",
						SemanticScope: "Channel not showing, channel removed from pack, channel black screen, paid channel not available, regional channel missing, HD channel not working, channel list changed, favorite channel gone",
					},
					"2": {
						Name:          "Set-Top Box Issues",
						SemanticScope: "Set-top box not turning on, remote not working, set-top box hanging/freezing, recording not working, set-top box overheating, display error on box, need set-top box replacement, software update stuck, box showing boot loop",
					},
					"3": {
						Name:          "Billing & Subscription",
						SemanticScope: "Wrong DTH bill, subscription expired, auto-renewal issue, pack change charges, NCF charges too high, channel added without consent, refund not received, wallet recharge failed, monthly charges incorrect",
					},
					"4": {
						Name:          "Signal / Picture Quality",
						SemanticScope: "No signal on TV, picture breaking/pixelating, rain causing signal loss, dish alignment needed, weak signal, audio out of sync, color distortion, signal loss at certain times, frozen picture, horizontal lines on TV",
					},
					"5": {
						Name:          "Package / Plan Changes",
						SemanticScope: "Want to change channel pack, upgrade to HD, add premium channels, downgrade plan, customize channel selection, regional pack addition, sports pack subscription, plan comparison, best value pack",
					},
					"6": {Name: OthersName},
				},
			},
			"4": {
				Key:         "4",
				Name:        "Landline / Fixed Line Services",
				Icon:        "☎️",
				Description: "Covers all issues related to traditional landline phone services, fixed-line connections, and wired telephone services.",
				SubprocessOrder: []string{"1", "2", "3", "4", "5", "6"},
				Subprocesses: map[string]Subprocess{
					"1": {
						Name:          "No Dial Tone / Dead Line",
						SemanticScope: "Landline not working, no dial tone, line dead, phone silent, no sound when picking up receiver, line suddenly stopped working, connection cut off, cable damaged",
					},
					"2": {
						Name:          "Call Quality Issues (Noise / Echo)",
						SemanticScope: "Static noise on landline, echo during calls, crackling sound, voice breaking, cross-connection hearing other conversations, humming noise, low volume on calls, distorted audio",
					},
					"3": {
						Name:          "Billing & Charges",
						SemanticScope: "Landline bill too high, calls charged incorrectly, wrong number dialed charges, rental overcharged, payment not updated, metered vs unlimited plan dispute, ISD charges on landline",
					},
					"4": {
						Name:          "New Connection / Disconnection",
						SemanticScope: "Want new landline connection, disconnection request, temporary suspension, connection shifting to new address, reconnection after disconnection, transfer of ownership",
					},
					"5": {
						Name:          "Fault Repair Request",
						SemanticScope: "Cable cut in area, junction box damaged, overhead wire fallen, underground cable fault, technician visit needed, repeated fault in same line, wet cable causing issues, maintenance request",
					},
					"6": {Name: OthersName},
				},
			},
			"5": {
				Key:         "5",
				Name:        "Enterprise / Business Solutions",
				Icon:        "🏢",
				Description: "Covers all issues related to business/corporate telecom solutions including leased lines, SLA-based services, bulk connections, cloud telephony, and managed network services.",
				SubprocessOrder: []string{"1", "2", "3", "4", "5", "6"},
				Subprocesses: map[string]Subprocess{
					"1": {
						Name:          "SLA Breach / Service Downtime",
						SemanticScope: "Service level agreement not met, uptime guarantee violated, business internet down, prolonged outage affecting business, compensation for downtime, SLA penalty claim, response time exceeded",
					},
					"2": {
						Name:          "Leased Line / Dedicated Connection",
						SemanticScope: "Leased line down, dedicated bandwidth not delivered, point-to-point link failure, MPLS circuit issue, last mile connectivity problem, fiber cut affecting leased line, jitter/latency on dedicated line",
					},
					"3": {
						Name:          "Bulk / Corporate Plan Issues",
						SemanticScope: "Corporate plan benefits not applied, bulk SIM management, employee connection issues, CUG (Closed User Group) problem, corporate billing discrepancy, group plan changes",
					},
					"4": {
						Name:          "Cloud / VPN / MPLS Issues",
						SemanticScope: "VPN tunnel down, MPLS network unreachable, cloud connectivity slow, SD-WAN issue, site-to-site VPN failure, enterprise cloud access problem, managed WiFi for office not working",
					},
					"5": {
						Name:          "Technical Support Escalation",
						SemanticScope: "Need senior technician, previous complaint not resolved, multiple complaints on same issue, want to escalate to manager, technical team not responding, critical issue needs immediate attention",
					},
					"6": {Name: OthersName},
				},
			},
		},
	}
}
