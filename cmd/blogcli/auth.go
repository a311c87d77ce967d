package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-local-blog/internal/service"
)

var registerIn service.RegisterInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.svc.Register(a.ctx, registerIn); err != nil {
			return err
		}

		fmt.Println("registered:", registerIn.Account)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <account> <password>",
	Short: "Log in and persist the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		session, err := a.svc.Login(a.ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("logged in as %s (%s)\n", session.Nickname, session.Handle)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.svc.Logout(a.ctx); err != nil {
			return err
		}

		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.svc.IsLoggedIn() {
			fmt.Println("not logged in")
			return nil
		}

		s := a.svc.CurrentSession()
		fmt.Printf("%s (%s) <%s> role=%s\n", s.Nickname, s.Handle, s.Email, s.Role)
		return nil
	},
}

func init() {
	f := registerCmd.Flags()
	f.StringVar(&registerIn.Nickname, "nickname", "", "display nickname")
	f.StringVar(&registerIn.Account, "account", "", "account handle (6-20 chars, [A-Za-z0-9_])")
	f.StringVar(&registerIn.Email, "email", "", "email address")
	f.StringVar(&registerIn.Password, "password", "", "password")
	f.StringVar(&registerIn.ConfirmPassword, "confirm", "", "password confirmation")
	f.StringVar(&registerIn.Avatar, "avatar", "", "avatar reference")
}
