package cafe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Arshadali10614941/cafe-system/internal/models"
	"github.com/schollz/progressbar/v3"
)

var ErrInputClosed = errors.New("input closed")

// paymentTick paces the cosmetic payment progress bar; tests zero it.
var paymentTick = 40 * time.Millisecond

// Session drives one customer's order from menu browsing through payment.
// All domain rules live in the models; the session only prompts, parses and
// retries on bad input.
type Session struct {
	Menu     *models.Menu
	Customer *models.Customer
	Staff    *models.Staff
	Order    *models.Order

	in       *bufio.Scanner
	out      io.Writer
	renderer *Renderer
}

func NewSession(cfg *models.Config, menu *models.Menu, customer *models.Customer, in io.Reader, out io.Writer) *Session {
	order := models.NewOrder(1, time.Now(), models.OrderStatusPending)
	order.Attach(NewConsoleObserver(out))
	return &Session{
		Menu:     menu,
		Customer: customer,
		Staff:    &models.Staff{ID: 1, Name: cfg.StaffName},
		Order:    order,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(out, cfg.CurrencySymbol),
	}
}

// Run executes the full ordering loop: assemble the order, confirm it, hand
// it to staff for completion, issue the bill and take payment.
func (s *Session) Run() error {
	if s.Customer.Name == "" {
		name, err := s.prompt("Enter your name: ")
		if err != nil {
			return err
		}
		s.Customer.Name = name
	}

	for {
		s.renderer.Menu(s.Menu)
		choice, err := s.prompt("Enter the number of the item you want to order (or press Q to finish): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, "q") {
			s.renderer.Order(s.Order)
			confirm, err := s.prompt("Confirm your order? (Y/N): ")
			if err != nil {
				return err
			}
			if strings.EqualFold(confirm, "y") {
				break
			}
			continue
		}

		id, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter valid numbers.")
			continue
		}
		item, ok := s.Menu.Find(id)
		if !ok {
			fmt.Fprintln(s.out, "Invalid menu item number.")
			continue
		}
		quantity, err := s.promptInt("Enter quantity of this item: ")
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			fmt.Fprintln(s.out, "Invalid input. Please enter valid numbers.")
			continue
		}
		s.Order.AddLine(item, quantity)

		if err := s.removalLoop(); err != nil {
			return err
		}
	}

	if err := s.Customer.PlaceOrder(s.Order); err != nil {
		fmt.Fprintln(s.out, "Cannot place an empty order. Add items first.")
		return err
	}
	fmt.Fprintf(s.out, "\nOrder %d placed by %s\n", s.Order.ID, s.Customer.Name)
	fmt.Fprintln(s.out, "Order completed successfully!")

	s.Staff.UpdateOrderStatus(s.Order, models.OrderStatusCompleted)

	bill := models.NewBill(s.Order)
	s.renderer.Bill(bill)

	return s.takePayment(bill)
}

// removalLoop lets the customer drop items or quantities from the current
// order until they decline.
func (s *Session) removalLoop() error {
	for {
		s.renderer.Order(s.Order)
		remove, err := s.prompt("Remove an item? (Y/N): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(remove, "y") {
			return nil
		}
		position, err := s.promptInt("Enter the item number to remove from your current order: ")
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			fmt.Fprintln(s.out, "Invalid removal selection.")
			continue
		}
		if position < 1 || position > len(s.Order.Lines()) {
			fmt.Fprintln(s.out, "Invalid removal selection.")
			continue
		}
		line := s.Order.Lines()[position-1]
		quantity, err := s.promptInt(fmt.Sprintf("Quantity to remove (max %d): ", line.Quantity))
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			fmt.Fprintln(s.out, "Invalid removal selection.")
			continue
		}
		s.Order.RemoveLine(position, quantity)
	}
}

func (s *Session) takePayment(bill *models.Bill) error {
	method, err := s.prompt("Enter payment method (Cash/Card): ")
	if err != nil {
		return err
	}
	payment := models.NewPayment(method, bill.Total())
	for {
		err := payment.Process()
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrInvalidMethod) {
			payment.Method, err = s.prompt("Invalid payment method. Please enter 'Cash' or 'Card': ")
			if err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(s.out, "Invalid payment amount. Cannot process payment.")
		return err
	}

	bar := progressbar.NewOptions(10,
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSetDescription("Processing payment"),
	)
	for i := 0; i < 10; i++ {
		bar.Add(1)
		time.Sleep(paymentTick)
	}
	fmt.Fprintln(s.out)

	s.renderer.Payment(payment)
	return nil
}

func (s *Session) prompt(message string) (string, error) {
	fmt.Fprint(s.out, message)
	if !s.in.Scan() {
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptInt parses a positive integer answer; non-numbers and values below
// one are rejected before they ever reach the order.
func (s *Session) promptInt(message string) (int, error) {
	answer, err := s.prompt(message)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("value out of range: %d", value)
	}
	return value, nil
}
