// Command client runs the registration form in the terminal: it collects and
// validates the same fields as the browser form, fetches the city/area lookup
// data from the server, and submits everything as one multipart request.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go-registration-portal/internal/client/api"
	"go-registration-portal/internal/client/form"

	"github.com/sirupsen/logrus"
)

var fieldLabels = map[string]string{
	form.FieldProfilePhoto:    "Profile Photo (path to image file)",
	form.FieldFullname:        "Full Name",
	form.FieldEmailID:         "Email ID",
	form.FieldContactNumber:   "Contact No",
	form.FieldGender:          "Gender (Male/Female/Other)",
	form.FieldDateOfBirth:     "DOB (YYYY-MM-DD)",
	form.FieldCity:            "City",
	form.FieldArea:            "Area",
	form.FieldPassword:        "Password",
	form.FieldConfirmPassword: "Confirm Password",
}

func main() {
	serverURL := flag.String("server", "http://localhost:9090", "registration server base URL")
	flag.Parse()

	log := logrus.StandardLogger()
	client := api.NewClient(*serverURL)
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	for {
		if err := runSession(ctx, client, log, reader); err != nil {
			log.Errorf("Session ended with error: %v", err)
		}
	}
}

// runSession drives one form lifecycle: edit, submit, and on success show
// the confirmation for five seconds before starting over with a fresh form.
func runSession(ctx context.Context, client *api.Client, log *logrus.Logger, reader *bufio.Reader) error {
	f := form.New(client, log)
	if err := f.Load(ctx); err != nil {
		return err
	}

	fmt.Println("\n--- User Registration ---")

	for _, field := range form.AllFields {
		promptField(ctx, f, reader, field)
	}

	// Re-prompt fields with outstanding validation errors until the form is
	// submittable. Errors never block the other fields, only submission.
	for len(f.Validate()) > 0 {
		for _, field := range form.AllFields {
			if msg, ok := f.Errors()[field]; ok {
				fmt.Printf("%s\n", msg)
				promptField(ctx, f, reader, field)
			}
		}
	}

	if err := f.Submit(ctx); err != nil {
		// Failed submissions are logged only; the session starts over.
		return nil
	}

	fmt.Println("Registration successful")
	time.Sleep(form.SuccessDisplayDuration)
	f.Reset()

	return nil
}

func promptField(ctx context.Context, f *form.Form, reader *bufio.Reader, field string) {
	switch field {
	case form.FieldCity:
		fmt.Printf("Select City %v: ", f.Cities())
		city := readLine(reader)
		if err := f.SelectCity(ctx, city); err != nil {
			logrus.Errorf("Error fetching areas: %v", err)
		}
	case form.FieldArea:
		fmt.Printf("Select Area %v: ", f.Areas())
		f.SetField(field, readLine(reader))
	default:
		fmt.Printf("%s: ", fieldLabels[field])
		f.SetField(field, readLine(reader))
	}

	if msg, ok := f.Errors()[field]; ok {
		fmt.Println(msg)
	}
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
