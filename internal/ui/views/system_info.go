package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool
	DefaultCurrency string
	NumberStyle     string
	Timezone        string
	UserID          string
	RemoteURL       string
	AppDataDir      string
	Wallets         int
	Categories      int
	Transactions    int
	Budgets         int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	userID := data.UserID
	if userID == "" {
		userID = pterm.Yellow("not set")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Number Style", data.NumberStyle},
		{"Timezone", data.Timezone},
		{"User ID", userID},
		{"Backend", data.RemoteURL},
		{"AppData Directory", data.AppDataDir},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Println()
	counts := pterm.TableData{
		{"Wallets", "Categories", "Transactions", "Budgets"},
		{pterm.Sprint(data.Wallets), pterm.Sprint(data.Categories), pterm.Sprint(data.Transactions), pterm.Sprint(data.Budgets)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(counts).Render()
}
