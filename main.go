package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hotelsys/config"
	"hotelsys/dto"
	"hotelsys/response"
	"hotelsys/services"
	"hotelsys/services/logger"
	"hotelsys/utils"

	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnv()

	app := &cli.App{
		Name:  "hotelsys",
		Usage: "hotel reservation console persisted to JSONL files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding hotels.jsonl, customers.jsonl and reservations.jsonl",
			},
			&cli.StringFlag{
				Name:  "log-dir",
				Value: "logs",
				Usage: "directory for session log files",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	dataDir := config.ResolveDataDir(c.String("data-dir"))
	if err := config.EnsureDir(dataDir); err != nil {
		return err
	}

	// Output được nhân bản ra console và file log của phiên làm việc
	out := io.Writer(os.Stdout)
	logFile, err := utils.OpenLogFile(c.String("log-dir"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	} else {
		defer logFile.Close()
		out = io.MultiWriter(os.Stdout, logFile)
	}

	system := services.NewHotelSystem(services.HotelSystemOptions{
		DataDir: dataDir,
		Logger:  logger.NewWriterLogger(logger.InfoLevel, out),
	})

	ui := &console{
		system: system,
		in:     bufio.NewScanner(os.Stdin),
		out:    out,
	}
	fmt.Fprintf(out, "Data directory: %s\n", dataDir)
	ui.runMenu()
	return nil
}

// console là vòng lặp menu tương tác trên stdin/stdout
type console struct {
	system *services.HotelSystem
	in     *bufio.Scanner
	out    io.Writer
}

func (ui *console) runMenu() {
	actions := map[string]func(){
		"1":  ui.createHotel,
		"2":  ui.deleteHotel,
		"3":  ui.showHotel,
		"4":  ui.modifyHotel,
		"5":  ui.createCustomer,
		"6":  ui.deleteCustomer,
		"7":  ui.showCustomer,
		"8":  ui.modifyCustomer,
		"9":  ui.createReservation,
		"10": ui.cancelReservation,
		"11": ui.showReservation,
		"12": ui.searchReservations,
	}

	for {
		ui.printMenu()
		choice, ok := ui.prompt("Select an option: ")
		if !ok || choice == "0" {
			fmt.Fprintln(ui.out, "Bye.")
			return
		}

		action, found := actions[choice]
		if !found {
			fmt.Fprintln(ui.out, "ERROR: invalid option.")
			continue
		}
		action()
	}
}

func (ui *console) printMenu() {
	fmt.Fprintln(ui.out, "\n=== Hotel Reservation System ===")
	fmt.Fprintln(ui.out, "1. Create hotel")
	fmt.Fprintln(ui.out, "2. Delete hotel")
	fmt.Fprintln(ui.out, "3. Show hotel")
	fmt.Fprintln(ui.out, "4. Modify hotel")
	fmt.Fprintln(ui.out, "5. Create customer")
	fmt.Fprintln(ui.out, "6. Delete customer")
	fmt.Fprintln(ui.out, "7. Show customer")
	fmt.Fprintln(ui.out, "8. Modify customer")
	fmt.Fprintln(ui.out, "9. Create reservation")
	fmt.Fprintln(ui.out, "10. Cancel reservation")
	fmt.Fprintln(ui.out, "11. Show reservation")
	fmt.Fprintln(ui.out, "12. Search reservations by customer name")
	fmt.Fprintln(ui.out, "0. Exit")
}

// prompt đọc một dòng input, ok=false khi stdin đóng
func (ui *console) prompt(label string) (string, bool) {
	fmt.Fprint(ui.out, label)
	if !ui.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(ui.in.Text()), true
}

// promptInt đọc số nguyên với retry
func (ui *console) promptInt(label string) (int, bool) {
	for {
		raw, ok := ui.prompt(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(ui.out, "ERROR: an integer is required.")
			continue
		}
		return value, true
	}
}

func splitCSV(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func (ui *console) createHotel() {
	name, _ := ui.prompt("Hotel name: ")
	location, _ := ui.prompt("Location: ")
	totalRooms, ok := ui.promptInt("Total rooms: ")
	if !ok {
		return
	}
	rawAmenities, _ := ui.prompt("Amenities, comma separated (optional): ")

	hotel, err := ui.system.CreateHotel(name, location, totalRooms, splitCSV(rawAmenities))
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Hotel created: %s", hotel.HotelID)
}

func (ui *console) deleteHotel() {
	hotelID, _ := ui.prompt("Hotel ID to delete: ")
	if err := ui.system.DeleteHotel(hotelID); err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Hotel deleted.")
}

func (ui *console) showHotel() {
	hotelID, _ := ui.prompt("Hotel ID: ")
	hotel, err := ui.system.GetHotel(hotelID)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Hotel(ui.out, hotel)
}

func (ui *console) modifyHotel() {
	hotelID, _ := ui.prompt("Hotel ID to modify: ")
	fmt.Fprintln(ui.out, "Leave a field blank to keep its current value.")

	var update dto.HotelUpdate
	if name, _ := ui.prompt("New name: "); name != "" {
		update.Name = &name
	}
	if location, _ := ui.prompt("New location: "); location != "" {
		update.Location = &location
	}
	if raw, _ := ui.prompt("New total rooms: "); raw != "" {
		totalRooms, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(ui.out, "ERROR: invalid total rooms.")
			return
		}
		update.TotalRooms = &totalRooms
	}
	if raw, _ := ui.prompt("New available rooms: "); raw != "" {
		availableRooms, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(ui.out, "ERROR: invalid available rooms.")
			return
		}
		update.AvailableRooms = &availableRooms
	}
	if raw, _ := ui.prompt("New amenities, comma separated: "); raw != "" {
		update.Amenities = splitCSV(raw)
	}

	if update.IsEmpty() {
		fmt.Fprintln(ui.out, "No changes provided.")
		return
	}
	if err := ui.system.ModifyHotel(hotelID, update); err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Hotel updated.")
}

func (ui *console) createCustomer() {
	fullName, _ := ui.prompt("Full name: ")
	email, _ := ui.prompt("Email: ")
	phone, _ := ui.prompt("Phone: ")

	customer, err := ui.system.CreateCustomer(fullName, email, phone)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Customer created: %s", customer.CustomerID)
}

func (ui *console) deleteCustomer() {
	customerID, _ := ui.prompt("Customer ID to delete: ")
	if err := ui.system.DeleteCustomer(customerID); err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Customer deleted.")
}

func (ui *console) showCustomer() {
	customerID, _ := ui.prompt("Customer ID: ")
	customer, err := ui.system.GetCustomer(customerID)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Customer(ui.out, customer)
}

func (ui *console) modifyCustomer() {
	customerID, _ := ui.prompt("Customer ID to modify: ")
	fmt.Fprintln(ui.out, "Leave a field blank to keep its current value.")

	var update dto.CustomerUpdate
	if fullName, _ := ui.prompt("New full name: "); fullName != "" {
		update.FullName = &fullName
	}
	if email, _ := ui.prompt("New email: "); email != "" {
		update.Email = &email
	}
	if phone, _ := ui.prompt("New phone: "); phone != "" {
		update.Phone = &phone
	}

	if update.IsEmpty() {
		fmt.Fprintln(ui.out, "No changes provided.")
		return
	}
	if err := ui.system.ModifyCustomer(customerID, update); err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Customer updated.")
}

func (ui *console) createReservation() {
	customerID, _ := ui.prompt("Customer ID: ")
	hotelID, _ := ui.prompt("Hotel ID: ")
	roomCount, ok := ui.promptInt("Rooms to reserve: ")
	if !ok {
		return
	}

	reservation, err := ui.system.CreateReservation(customerID, hotelID, roomCount)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Reservation created: %s", reservation.ReservationID)
}

func (ui *console) cancelReservation() {
	reservationID, _ := ui.prompt("Reservation ID to cancel: ")
	if err := ui.system.CancelReservation(reservationID); err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Success(ui.out, "Reservation cancelled.")
}

func (ui *console) showReservation() {
	reservationID, _ := ui.prompt("Reservation ID: ")
	detail, err := ui.system.GetReservation(reservationID)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Reservation(ui.out, detail)
}

func (ui *console) searchReservations() {
	customerName, _ := ui.prompt("Customer name to search: ")
	results, err := ui.system.SearchReservationsByName(customerName)
	if err != nil {
		response.Error(ui.out, err)
		return
	}
	response.Reservations(ui.out, results)
}
