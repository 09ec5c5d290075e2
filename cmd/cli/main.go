package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hotelreserve/internal/config"
	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/booking"
	"hotelreserve/internal/modules/payment"
	"hotelreserve/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	catalogStore, reservationStore, err := openStores(cfg)
	if err != nil {
		log.Fatal(err)
	}

	gateway := payment.NewSimulator(nil, nil)
	service, err := booking.NewService(context.Background(), catalogStore, reservationStore, gateway, nil)
	if err != nil {
		log.Fatal(err)
	}

	in := bufio.NewReader(os.Stdin)
	fmt.Println("==== Hotel Reservation System ====")
	for {
		printMenu()
		switch prompt(in, "Choose: ") {
		case "1":
			handleSearch(service, in)
		case "2":
			handleBook(service, in)
		case "3":
			handleCancel(service, in)
		case "4":
			handleView(service, in)
		case "5":
			handleList(service)
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option.")
		}
		fmt.Println()
	}
}

func openStores(cfg *config.Config) (booking.CatalogStore, booking.ReservationStore, error) {
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.Migrate(db); err != nil {
			return nil, nil, err
		}
		return repository.NewRoomDBRepository(db), repository.NewReservationDBRepository(db), nil
	}
	return repository.NewRoomFileRepository(cfg.RoomsFile()),
		repository.NewReservationFileRepository(cfg.ReservationsFile()), nil
}

func printMenu() {
	fmt.Println("\n1) Search Available Rooms")
	fmt.Println("2) Book a Room")
	fmt.Println("3) Cancel Reservation")
	fmt.Println("4) View Booking Details")
	fmt.Println("5) List All Bookings")
	fmt.Println("0) Exit")
}

func handleSearch(service *booking.Service, in *bufio.Reader) {
	category := askCategory(in)
	checkIn := askDate(in, "Check-in (YYYY-MM-DD): ")
	checkOut := askDate(in, "Check-out (YYYY-MM-DD): ")
	if !validateRange(checkIn, checkOut) {
		return
	}

	rooms, err := service.Search(context.Background(), category, checkIn, checkOut)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(rooms) == 0 {
		fmt.Printf("No rooms available between %s and %s\n",
			checkIn.Format(domain.DateLayout), checkOut.Format(domain.DateLayout))
		return
	}
	fmt.Println("\nAvailable rooms:")
	for _, r := range rooms {
		fmt.Printf("- %s | %s | ₹%.2f per night\n", r.ID, r.Category, r.PricePerNight)
	}
}

func handleBook(service *booking.Service, in *bufio.Reader) {
	customer := prompt(in, "Customer Name: ")
	category := askCategory(in)
	checkIn := askDate(in, "Check-in (YYYY-MM-DD): ")
	checkOut := askDate(in, "Check-out (YYYY-MM-DD): ")
	if !validateRange(checkIn, checkOut) {
		return
	}

	fmt.Println("\n--- Payment Simulation ---")
	card := prompt(in, "Enter fake card number (16 digits): ")
	cvv := prompt(in, "Enter fake CVV (3 digits): ")

	res, err := service.Book(context.Background(), booking.BookRequest{
		CustomerName: customer,
		Category:     category,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CardNumber:   card,
		CVV:          cvv,
	})
	switch {
	case errors.Is(err, booking.ErrNotAvailable):
		fmt.Println("No available rooms found for the selected dates.")
		return
	case err != nil:
		fmt.Println("Error:", err)
		return
	}
	if res.Status != domain.StatusConfirmed {
		fmt.Println("Payment declined. The attempt was recorded.")
	}
	printReservation(res)
}

func handleCancel(service *booking.Service, in *bufio.Reader) {
	id := prompt(in, "Reservation ID to cancel: ")
	_, err := service.Cancel(context.Background(), id)
	if err != nil {
		fmt.Println("Not found or already cancelled.")
		return
	}
	fmt.Println("Reservation cancelled (refund simulated if applicable).")
}

func handleView(service *booking.Service, in *bufio.Reader) {
	id := prompt(in, "Reservation ID: ")
	res, err := service.Find(context.Background(), id)
	if err != nil {
		fmt.Println("Reservation not found.")
		return
	}
	printReservation(res)
}

func handleList(service *booking.Service) {
	all := service.ListAll(context.Background())
	if len(all) == 0 {
		fmt.Println("No bookings yet.")
		return
	}
	for _, r := range all {
		fmt.Printf("%s | %s | %s | %s→%s | ₹%.2f | %s/%s\n",
			r.ID, r.CustomerName, r.RoomID,
			r.CheckIn.Format(domain.DateLayout), r.CheckOut.Format(domain.DateLayout),
			r.TotalCost, r.Status, r.PaymentStatus)
	}
}

func askCategory(in *bufio.Reader) string {
	cat := prompt(in, "Category [Standard/Deluxe/Suite or Enter for Any]: ")
	if cat == "" {
		return ""
	}
	if _, ok := domain.ParseCategory(cat); !ok {
		fmt.Println("Unknown category. Defaulting to Any.")
		return ""
	}
	return cat
}

func askDate(in *bufio.Reader, label string) time.Time {
	for {
		s := prompt(in, label)
		d, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
		if err == nil {
			return d
		}
		fmt.Println("Invalid date format. Try again (YYYY-MM-DD).")
	}
}

func validateRange(checkIn, checkOut time.Time) bool {
	if !checkIn.Before(checkOut) {
		fmt.Println("Check-out must be after check-in.")
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		fmt.Println("Check-in cannot be in the past.")
		return false
	}
	return true
}

func printReservation(r *domain.Reservation) {
	fmt.Println("\n===== Booking Details =====")
	fmt.Println("Reservation ID :", r.ID)
	fmt.Println("Customer       :", r.CustomerName)
	fmt.Printf("Room           : %s (%s)\n", r.RoomID, r.Category)
	fmt.Println("Check-in       :", r.CheckIn.Format(domain.DateLayout))
	fmt.Println("Check-out      :", r.CheckOut.Format(domain.DateLayout))
	fmt.Println("Nights         :", r.Nights)
	fmt.Printf("Total Cost     : ₹%.2f\n", r.TotalCost)
	fmt.Println("Status         :", r.Status)
	fmt.Println("Payment        :", r.PaymentStatus)
	fmt.Println("Created At     :", r.CreatedAt.Format(domain.DateTimeLayout))
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
