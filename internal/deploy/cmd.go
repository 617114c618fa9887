package deploy

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rootstock-community/create-rsk-dapp/configs"
	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

var CMD = &cobra.Command{
	Use:   "deploy",
	Short: "Compile and deploy the project's contracts to a Rootstock network",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configs.Values.Deploy
		if err := cfg.Validate(); err != nil {
			return err
		}

		netName := cfg.Network
		if netName == "" {
			netName = "testnet"
		}

		contract, err := cmd.Flags().GetString("contract")
		if err != nil {
			return err
		}

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		runner := NewRunner(workDir, execx.NewOSRunner(), ui.NewStdinPrompter(), ui.NewPrinter())
		_, err = runner.Deploy(cmd.Context(), Options{Network: netName, Contract: contract})
		return err
	},
}

func init() {
	CMD.Flags().String("network", "testnet", "Target network (testnet or mainnet)")
	CMD.Flags().String("contract", "", "Deploy a specific contract's script instead of the default")

	if err := viper.BindPFlag("deploy.network", CMD.Flags().Lookup("network")); err != nil {
		panic(err)
	}
}
