package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"storefront/internal/app"
	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

func main() {
	cliApp := &cli.App{
		Name:  "storefront",
		Usage: "storefront client for the Invexa API",
		Commands: []*cli.Command{
			productsCommand(),
			productCommand(),
			cartCommand(),
			checkoutCommand(),
			ordersCommand(),
			orderCommand(),
			payCommand(),
			returnsCommand(),
			returnCommand(),
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			shellCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// 全コマンド共通：コンテナを組み立てて1回だけ使う
func newApp() (*app.App, error) {
	return app.New(os.Stdout)
}

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "browse the catalog",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "latest", Usage: "show only the N newest products"},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if n := c.Int("latest"); n > 0 {
				return a.CatalogScreen.RenderLatest(context.Background(), n)
			}
			return a.CatalogScreen.Render(context.Background())
		},
	}
}

func productCommand() *cli.Command {
	return &cli.Command{
		Name:      "product",
		Usage:     "show product detail",
		ArgsUsage: "<product-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: storefront product <product-id>", 2)
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.ProductDetailScreen.Render(context.Background(), c.Args().First())
		},
	}
}

// カートはプロセス内メモリのみなので、1コマンド内で組み立てて表示する
func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "build a cart from --item flags and show it",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "item", Usage: "product-id=quantity (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := context.Background()
			_ = a.Catalog.Load(ctx)
			if err := fillCart(a, c.StringSlice("item")); err != nil {
				return err
			}
			return a.CartScreen.Render()
		},
	}
}

func checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "place an order from --item flags",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "item", Usage: "product-id=quantity (repeatable)", Required: true},
			&cli.StringFlag{Name: "fname", Required: true},
			&cli.StringFlag{Name: "lname", Required: true},
			&cli.StringFlag{Name: "email", Usage: "defaults to the logged-in email"},
			&cli.StringFlag{Name: "address", Required: true},
			&cli.StringFlag{Name: "state"},
			&cli.StringFlag{Name: "city", Required: true},
			&cli.StringFlag{Name: "zip"},
			&cli.StringFlag{Name: "country"},
			&cli.StringFlag{Name: "phone", Required: true},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := context.Background()
			_ = a.Catalog.Load(ctx)
			if err := fillCart(a, c.StringSlice("item")); err != nil {
				return err
			}

			a.CheckoutScreen.RenderSummary()
			return a.CheckoutScreen.PlaceOrder(ctx, usecase.DeliveryDetails{
				Fname:   c.String("fname"),
				Lname:   c.String("lname"),
				Email:   c.String("email"),
				Address: c.String("address"),
				State:   c.String("state"),
				City:    c.String("city"),
				ZipCode: c.String("zip"),
				Country: c.String("country"),
				Phone:   c.String("phone"),
			})
		},
	}
}

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "list orders",
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.OrderListScreen.Render(context.Background())
		},
	}
}

func orderCommand() *cli.Command {
	return &cli.Command{
		Name:      "order",
		Usage:     "show, update or delete one order",
		ArgsUsage: "<order-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "set-status", Usage: "update the order status"},
			&cli.BoolFlag{Name: "delete", Usage: "delete the order"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: storefront order <order-id>", 2)
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := context.Background()
			id := c.Args().First()

			if c.Bool("delete") {
				return a.OrderDetailScreen.Delete(ctx, id)
			}
			if status := c.String("set-status"); status != "" {
				return a.OrderDetailScreen.UpdateStatus(ctx, id, model.OrderStatus(status))
			}
			return a.OrderDetailScreen.Render(ctx, id)
		},
	}
}

func payCommand() *cli.Command {
	return &cli.Command{
		Name:  "pay",
		Usage: "pay for an order",
		Subcommands: []*cli.Command{
			{
				Name:  "card",
				Usage: "pay by credit card",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "order", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "number", Required: true},
					&cli.StringFlag{Name: "expiry", Required: true, Usage: "MM/YY"},
					&cli.StringFlag{Name: "cvv", Required: true},
				},
				Action: func(c *cli.Context) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					ctx := context.Background()
					_ = a.PaymentScreen.Render(ctx, c.String("order"))
					return a.PaymentScreen.PayByCard(ctx, c.String("order"), usecase.CardDetails{
						Name:   c.String("name"),
						Number: c.String("number"),
						Expiry: c.String("expiry"),
						CVV:    c.String("cvv"),
					})
				},
			},
			{
				Name:  "slip",
				Usage: "upload a bank slip",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "order", Required: true},
					&cli.StringFlag{Name: "file", Required: true},
				},
				Action: func(c *cli.Context) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					return a.PaymentScreen.UploadSlip(context.Background(), c.String("order"), c.String("file"))
				},
			},
		},
	}
}

func returnsCommand() *cli.Command {
	return &cli.Command{
		Name:  "returns",
		Usage: "list return requests",
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.ReturnListScreen.Render(context.Background())
		},
	}
}

func returnCommand() *cli.Command {
	return &cli.Command{
		Name:  "return",
		Usage: "create a return request for an order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "order", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringSliceFlag{Name: "item", Usage: "name|quantity|reason (repeatable)", Required: true},
			&cli.StringSliceFlag{Name: "image", Usage: "evidence image path (repeatable, max 5)"},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := context.Background()

			items, err := parseReturnItems(c.StringSlice("item"))
			if err != nil {
				return err
			}

			_ = a.ReturnCreateScreen.Render(ctx, c.String("order"))
			return a.ReturnCreateScreen.Submit(ctx, c.String("order"), c.String("email"), items, c.StringSlice("image"))
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.AuthScreen.Login(context.Background(), c.String("email"), c.String("password"))
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "confirm-password", Required: true},
			&cli.StringFlag{Name: "business-name"},
			&cli.StringFlag{Name: "location"},
			&cli.StringFlag{Name: "address"},
			&cli.StringFlag{Name: "contact"},
		},
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.AuthScreen.Register(context.Background(), usecase.RegisterInput{
				Name:            c.String("name"),
				Email:           c.String("email"),
				Password:        c.String("password"),
				ConfirmPassword: c.String("confirm-password"),
				BusinessName:    c.String("business-name"),
				Location:        c.String("location"),
				Address:         c.String("address"),
				Contact:         c.String("contact"),
			})
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the stored session token",
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.AuthScreen.Logout()
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the current session",
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.AuthScreen.Whoami()
			return nil
		},
	}
}

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "interactive session (cart survives between commands)",
		Action: func(c *cli.Context) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runShell(a, os.Stdin, os.Stdout)
		},
	}
}
