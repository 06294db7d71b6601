package model

// Wire names follow the backend schema (snake_case field keys).
//
// Teams carry two identifiers: `id` is the backend's numeric surrogate and
// `team_id` is the stable human key. Routing always uses `team_id`; the
// surrogate is kept only because the backend sends it.

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Private  bool   `json:"private"`
	Teams    []Team `json:"teams,omitempty"`
}

// FullName joins name and surname for display.
func (u User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

type Team struct {
	ID          int    `json:"id,omitempty"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
	Users       []User `json:"users,omitempty"`
}

type Project struct {
	ID          int    `json:"id,omitempty"`
	ProjectID   string `json:"project_id"`
	TeamID      string `json:"team_id"`
	Team        *Team  `json:"team,omitempty"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Private     bool   `json:"private,omitempty"`
}

// TeamName returns the denormalized team name when the backend embedded one.
func (p Project) TeamName() string {
	if p.Team != nil && p.Team.TeamName != "" {
		return p.Team.TeamName
	}
	return ""
}

type Technology string

const (
	TechWiFi        Technology = "wifi"
	TechUART        Technology = "uart"
	TechJTAG        Technology = "jtag"
	TechBluetooth   Technology = "bluetooth"
	TechLTE         Technology = "lte"
	TechRFID        Technology = "rfid"
	TechNFC         Technology = "nfc"
	TechANTPlus     Technology = "ant+"
	TechLiFi        Technology = "lifi"
	TechZigbee      Technology = "zigbee"
	TechZWave       Technology = "z-wave"
	TechLTEAdvanced Technology = "lte-advanced"
	TechLoRa        Technology = "lora"
	TechNBIoT       Technology = "nb-iot"
	TechSigfox      Technology = "sigfox"
	TechNBFi        Technology = "nb-fi"
	TechHTTP        Technology = "http"
	TechHTTPS       Technology = "https"
	TechCoAP        Technology = "coap"
	TechMQTT        Technology = "mqtt"
	TechAMQP        Technology = "amqp"
	TechXMPP        Technology = "xmpp"
)

// Technologies lists every assessable technology in display order.
func Technologies() []Technology {
	return []Technology{
		TechWiFi, TechUART, TechJTAG, TechBluetooth, TechLTE, TechRFID,
		TechNFC, TechANTPlus, TechLiFi, TechZigbee, TechZWave,
		TechLTEAdvanced, TechLoRa, TechNBIoT, TechSigfox, TechNBFi,
		TechHTTP, TechHTTPS, TechCoAP, TechMQTT, TechAMQP, TechXMPP,
	}
}

func (t Technology) Valid() bool {
	for _, known := range Technologies() {
		if t == known {
			return true
		}
	}
	return false
}

type RiskLevel int

const (
	RiskLow    RiskLevel = 1
	RiskMedium RiskLevel = 2
	RiskHigh   RiskLevel = 3
)

func (r RiskLevel) Valid() bool { return r >= RiskLow && r <= RiskHigh }

func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

type Task struct {
	TaskID      string     `json:"task_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Technology  Technology `json:"technology"`
	RiskLevel   RiskLevel  `json:"risk_level"`
	Completed   bool       `json:"completed"`
	Ignored     bool       `json:"ignored"`
}

// Pending reports whether the task still needs attention.
// Completed, ignored and pending are mutually exclusive and exhaustive.
func (t Task) Pending() bool { return !t.Completed && !t.Ignored }
