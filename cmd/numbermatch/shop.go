package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/games/numbermatch"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/platform/tui"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

var flagPlayer string

// maxPurchase caps the quantity of one buy command.
const maxPurchase = 999

// shopItems lists the items in display order.
var shopItems = []string{"hint", "shuffle", "bomb", "freeze"}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show coins, stored power-ups and prices",
	Long: `Coins are earned by clearing numbers: one coin per removed cell. Spend
them on power-ups that the next game you start picks up. Freezes are only
used by the timed mode and stay stored for it.

Examples:
  numbermatch shop
  numbermatch shop buy hint
  numbermatch shop buy freeze 2
  numbermatch shop --player alice     # progress of an SSH user`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item> [qty]",
	Short: "Buy power-ups with coins",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runShopBuy,
}

func init() {
	shopCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "SSH user name whose progress to use")
	shopCmd.AddCommand(shopBuyCmd)
}

func shopKey() string {
	return tui.PlayerProgressKey(flagPlayer, numbermatch.ProgressKey)
}

func loadShop() (*storage.Store, config.ShopConfig) {
	gameCfg, err := config.LoadNumberMatch(flagConfig)
	if err != nil {
		cliLog.Warn("using default prices", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store, gameCfg.Shop
}

func printProgress(p storage.Progress, loc *i18n.Localizer) {
	fmt.Println(loc.Sprintf("Coins: %d", p.Coins))
	fmt.Println(loc.Sprintf("Stored: %d hints, %d shuffles, %d bombs, %d freezes",
		p.Hints, p.Shuffles, p.Bombs, p.Freezes))
}

func runShop(_ *cobra.Command, _ []string) {
	loc := localizer()
	store, shop := loadShop()
	defer store.Close()

	p, err := store.LoadProgress(shopKey())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress: %v\n", err)
		os.Exit(1)
	}

	printProgress(p, loc)
	fmt.Println()
	fmt.Println(loc.Sprintf("Prices:"))
	for _, item := range shopItems {
		price, _ := shop.Price(item)
		fmt.Printf("  %-8s %s\n", item, loc.Sprintf("%d coins", price))
	}
	fmt.Println()
	fmt.Println(loc.Sprintf("Run 'numbermatch shop buy <item> [qty]' to buy."))
}

// parseQuantity reads the qty argument of shop buy.
func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxPurchase {
		return 0, fmt.Errorf("invalid quantity %q (want 1 to %d)", s, maxPurchase)
	}
	return n, nil
}

func runShopBuy(_ *cobra.Command, args []string) {
	loc := localizer()
	item := args[0]
	qty := 1
	if len(args) > 1 {
		n, err := parseQuantity(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		qty = n
	}

	store, shop := loadShop()
	defer store.Close()

	price, ok := shop.Price(item)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown item %q (want hint, shuffle, bomb or freeze)\n", item)
		store.Close()
		os.Exit(1)
	}

	p, err := store.Purchase(shopKey(), item, qty, price)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientCoins) {
			fmt.Fprintln(os.Stderr, loc.Sprintf("Not enough coins: %d %s cost %d.", qty, item, qty*price))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}

	cliLog.Info("purchased", "item", item, "qty", qty, "cost", qty*price, "player", flagPlayer)
	fmt.Println(loc.Sprintf("Bought %d %s for %d coins.", qty, item, qty*price))
	printProgress(p, loc)
}
