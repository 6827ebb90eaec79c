package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.Register(ctx, &pb.RegisterRequest{Email: email, Name: name, Password: string(password)})
	if err != nil {
		return a.fail("Registration failed", err)
	}

	fmt.Fprintf(a.out, "Registered %s, now log in\n", resp.GetUser().GetEmail())
	return nil
}

// Login prompts for credentials and keeps the issued token for later calls.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return a.fail("Login failed", err)
	}

	a.token = resp.GetAccessToken()
	a.email = resp.GetUser().GetEmail()
	fmt.Fprintf(a.out, "Logged in, session valid until %s\n", resp.GetExpiresAt().AsTime().Local().Format("15:04:05"))
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Me prints the profile of the logged-in user.
func (a *App) Me(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.Profile(ctx, &pb.ProfileRequest{})
	if err != nil {
		return a.fail("Profile", err)
	}

	photo := "none"
	u := resp.GetUser()
	if u.GetAttachmentRef() != "" {
		photo = u.GetAttachmentRef()
	}
	fmt.Fprintf(a.out, "id:    %s\nemail: %s\nname:  %s\nphoto: %s\n", u.GetId(), u.GetEmail(), u.GetName(), photo)
	return nil
}
