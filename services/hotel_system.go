package services

import (
	"fmt"
	"path/filepath"

	"hotelsys/constants"
	"hotelsys/dto"
	"hotelsys/errors"
	"hotelsys/models"
	"hotelsys/services/logger"
	"hotelsys/storage"

	"github.com/google/uuid"
)

// Placeholder khi reservation trỏ tới khách hàng đã bị xóa
const customerNotFoundPlaceholder = "customer not found"

// HotelSystem quản lý hotels, customers và reservations trên file JSONL.
// Mỗi thao tác public load toàn bộ collection liên quan, validate,
// mutate trong bộ nhớ rồi ghi đè lại file. Không cache giữa các lần gọi
// nên mỗi lần gọi nhất quán với trạng thái hiện tại trên đĩa.
type HotelSystem struct {
	dataDir          string
	hotelsFile       string
	customersFile    string
	reservationsFile string
	logger           logger.Logger
}

// HotelSystemOptions cấu hình cho HotelSystem
type HotelSystemOptions struct {
	DataDir string
	Logger  logger.Logger
}

// NewHotelSystem tạo một instance mới của HotelSystem
func NewHotelSystem(opts HotelSystemOptions) *HotelSystem {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HotelSystem{
		dataDir:          opts.DataDir,
		hotelsFile:       filepath.Join(opts.DataDir, constants.HotelsFile),
		customersFile:    filepath.Join(opts.DataDir, constants.CustomersFile),
		reservationsFile: filepath.Join(opts.DataDir, constants.ReservationsFile),
		logger:           log,
	}
}

// DataDir trả về thư mục dữ liệu đang dùng
func (s *HotelSystem) DataDir() string {
	return s.dataDir
}

// generateID sinh identifier ngắn dạng PREFIX-xxxxxxxx
func generateID(prefix string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, id[:4])
}

func (s *HotelSystem) loadHotels() ([]*models.Hotel, error) {
	records, err := storage.Load(s.hotelsFile, "hotels", s.logger)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, "cannot read hotels", err)
	}
	hotels := make([]*models.Hotel, 0, len(records))
	for _, record := range records {
		hotel, err := models.HotelFromJSON(record)
		if err != nil {
			s.logger.Error("skipping hotel record: %v", err)
			continue
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

func (s *HotelSystem) loadCustomers() ([]*models.Customer, error) {
	records, err := storage.Load(s.customersFile, "customers", s.logger)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, "cannot read customers", err)
	}
	customers := make([]*models.Customer, 0, len(records))
	for _, record := range records {
		customer, err := models.CustomerFromJSON(record)
		if err != nil {
			s.logger.Error("skipping customer record: %v", err)
			continue
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *HotelSystem) loadReservations() ([]*models.Reservation, error) {
	records, err := storage.Load(s.reservationsFile, "reservations", s.logger)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, "cannot read reservations", err)
	}
	reservations := make([]*models.Reservation, 0, len(records))
	for _, record := range records {
		reservation, err := models.ReservationFromJSON(record)
		if err != nil {
			s.logger.Error("skipping reservation record: %v", err)
			continue
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (s *HotelSystem) saveHotels(hotels []*models.Hotel) error {
	records := make([]interface{}, len(hotels))
	for i, hotel := range hotels {
		records[i] = hotel
	}
	if err := storage.Save(s.hotelsFile, records); err != nil {
		return errors.NewAppError(errors.ErrCodeStorage, "cannot write hotels", err)
	}
	return nil
}

func (s *HotelSystem) saveCustomers(customers []*models.Customer) error {
	records := make([]interface{}, len(customers))
	for i, customer := range customers {
		records[i] = customer
	}
	if err := storage.Save(s.customersFile, records); err != nil {
		return errors.NewAppError(errors.ErrCodeStorage, "cannot write customers", err)
	}
	return nil
}

func (s *HotelSystem) saveReservations(reservations []*models.Reservation) error {
	records := make([]interface{}, len(reservations))
	for i, reservation := range reservations {
		records[i] = reservation
	}
	if err := storage.Save(s.reservationsFile, records); err != nil {
		return errors.NewAppError(errors.ErrCodeStorage, "cannot write reservations", err)
	}
	return nil
}

// CreateHotel tạo hotel mới với available = total và persist ngay
func (s *HotelSystem) CreateHotel(name, location string, totalRooms int, amenities []string) (*models.Hotel, error) {
	if amenities == nil {
		amenities = []string{}
	}
	hotel := &models.Hotel{
		HotelID:        generateID(constants.HotelIDPrefix),
		Name:           name,
		Location:       location,
		TotalRooms:     totalRooms,
		AvailableRooms: totalRooms,
		Amenities:      amenities,
	}
	if err := hotel.Validate(); err != nil {
		return nil, err
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return nil, err
	}
	hotels = append(hotels, hotel)
	if err := s.saveHotels(hotels); err != nil {
		return nil, err
	}
	return hotel, nil
}

// DeleteHotel xóa hotel nếu không còn reservation active trỏ tới nó
func (s *HotelSystem) DeleteHotel(hotelID string) error {
	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		if reservation.HotelID == hotelID && reservation.IsActive() {
			return errors.NewAppError(
				errors.ErrCodeActiveReservations,
				"cannot delete hotel with active reservations",
				nil,
			)
		}
	}

	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	remaining := make([]*models.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if hotel.HotelID != hotelID {
			remaining = append(remaining, hotel)
		}
	}
	if len(remaining) == len(hotels) {
		return errors.NewAppError(errors.ErrCodeHotelNotFound, "hotel not found: "+hotelID, errors.ErrHotelNotFound)
	}
	return s.saveHotels(remaining)
}

// GetHotel trả về hotel theo identifier
func (s *HotelSystem) GetHotel(hotelID string) (*models.Hotel, error) {
	hotels, err := s.loadHotels()
	if err != nil {
		return nil, err
	}
	for _, hotel := range hotels {
		if hotel.HotelID == hotelID {
			return hotel, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeHotelNotFound, "hotel not found: "+hotelID, errors.ErrHotelNotFound)
}

// ModifyHotel áp các field có trong update rồi validate lại cả record.
// Record không hợp lệ sau update thì không ghi gì xuống đĩa.
func (s *HotelSystem) ModifyHotel(hotelID string, update dto.HotelUpdate) error {
	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	for _, hotel := range hotels {
		if hotel.HotelID != hotelID {
			continue
		}

		if update.Name != nil {
			hotel.Name = *update.Name
		}
		if update.Location != nil {
			hotel.Location = *update.Location
		}
		if update.TotalRooms != nil {
			hotel.TotalRooms = *update.TotalRooms
		}
		if update.AvailableRooms != nil {
			hotel.AvailableRooms = *update.AvailableRooms
		}
		if update.Amenities != nil {
			hotel.Amenities = update.Amenities
		}

		if err := hotel.Validate(); err != nil {
			return err
		}
		return s.saveHotels(hotels)
	}
	return errors.NewAppError(errors.ErrCodeHotelNotFound, "hotel not found: "+hotelID, errors.ErrHotelNotFound)
}

// CreateCustomer tạo khách hàng mới và persist ngay
func (s *HotelSystem) CreateCustomer(fullName, email, phone string) (*models.Customer, error) {
	customer := &models.Customer{
		CustomerID: generateID(constants.CustomerIDPrefix),
		FullName:   fullName,
		Email:      email,
		Phone:      phone,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return nil, err
	}
	customers = append(customers, customer)
	if err := s.saveCustomers(customers); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer xóa khách hàng nếu không còn reservation active
func (s *HotelSystem) DeleteCustomer(customerID string) error {
	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		if reservation.CustomerID == customerID && reservation.IsActive() {
			return errors.NewAppError(
				errors.ErrCodeActiveReservations,
				"cannot delete customer with active reservations",
				nil,
			)
		}
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	remaining := make([]*models.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.CustomerID != customerID {
			remaining = append(remaining, customer)
		}
	}
	if len(remaining) == len(customers) {
		return errors.NewAppError(errors.ErrCodeCustomerNotFound, "customer not found: "+customerID, errors.ErrCustomerNotFound)
	}
	return s.saveCustomers(remaining)
}

// GetCustomer trả về khách hàng theo identifier
func (s *HotelSystem) GetCustomer(customerID string) (*models.Customer, error) {
	customers, err := s.loadCustomers()
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if customer.CustomerID == customerID {
			return customer, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeCustomerNotFound, "customer not found: "+customerID, errors.ErrCustomerNotFound)
}

// ModifyCustomer áp các field có trong update rồi validate lại
func (s *HotelSystem) ModifyCustomer(customerID string, update dto.CustomerUpdate) error {
	customers, err := s.loadCustomers()
	if err != nil {
		return err
	}
	for _, customer := range customers {
		if customer.CustomerID != customerID {
			continue
		}

		if update.FullName != nil {
			customer.FullName = *update.FullName
		}
		if update.Email != nil {
			customer.Email = *update.Email
		}
		if update.Phone != nil {
			customer.Phone = *update.Phone
		}

		if err := customer.Validate(); err != nil {
			return err
		}
		return s.saveCustomers(customers)
	}
	return errors.NewAppError(errors.ErrCodeCustomerNotFound, "customer not found: "+customerID, errors.ErrCustomerNotFound)
}

// CreateReservation đặt phòng cho khách hàng tại một hotel.
// Kiểm tra tồn tại và availability trước khi trừ phòng; ghi cả hai
// collection hotels và reservations, fail thì không ghi gì.
func (s *HotelSystem) CreateReservation(customerID, hotelID string, roomCount int) (*models.Reservation, error) {
	if roomCount <= 0 {
		return nil, errors.NewAppError(
			errors.ErrCodeInvalidRoomCount,
			"room count must be greater than zero",
			nil,
		)
	}

	customers, err := s.loadCustomers()
	if err != nil {
		return nil, err
	}
	hotels, err := s.loadHotels()
	if err != nil {
		return nil, err
	}
	reservations, err := s.loadReservations()
	if err != nil {
		return nil, err
	}

	var customer *models.Customer
	for _, current := range customers {
		if current.CustomerID == customerID {
			customer = current
			break
		}
	}
	if customer == nil {
		return nil, errors.NewAppError(errors.ErrCodeCustomerNotFound, "customer not found: "+customerID, errors.ErrCustomerNotFound)
	}

	var hotel *models.Hotel
	for _, current := range hotels {
		if current.HotelID == hotelID {
			hotel = current
			break
		}
	}
	if hotel == nil {
		return nil, errors.NewAppError(errors.ErrCodeHotelNotFound, "hotel not found: "+hotelID, errors.ErrHotelNotFound)
	}

	if hotel.AvailableRooms < roomCount {
		return nil, errors.NewAppError(
			errors.ErrCodeNoAvailability,
			"not enough availability for hotel "+hotelID,
			errors.ErrNoAvailability,
		)
	}

	reservation := &models.Reservation{
		ReservationID: generateID(constants.ReservationIDPrefix),
		CustomerID:    customerID,
		HotelID:       hotelID,
		RoomCount:     roomCount,
		Status:        constants.ReservationStatusActive,
	}
	if err := reservation.Validate(); err != nil {
		return nil, err
	}

	hotel.AvailableRooms -= roomCount
	reservations = append(reservations, reservation)

	if err := s.saveHotels(hotels); err != nil {
		return nil, err
	}
	if err := s.saveReservations(reservations); err != nil {
		return nil, err
	}
	return reservation, nil
}

// CancelReservation hủy một reservation active và trả lại availability,
// clamp về total_rooms. Hủy lại lần nữa là lỗi và không đổi gì.
func (s *HotelSystem) CancelReservation(reservationID string) error {
	hotels, err := s.loadHotels()
	if err != nil {
		return err
	}
	reservations, err := s.loadReservations()
	if err != nil {
		return err
	}

	var target *models.Reservation
	for _, reservation := range reservations {
		if reservation.ReservationID == reservationID {
			target = reservation
			break
		}
	}
	if target == nil {
		return errors.NewAppError(errors.ErrCodeReservationNotFound, "reservation not found: "+reservationID, errors.ErrReservationNotFound)
	}
	if target.Status == constants.ReservationStatusCancelled {
		return errors.NewAppError(errors.ErrCodeAlreadyCancelled, "reservation already cancelled", errors.ErrAlreadyCancelled)
	}

	var hotel *models.Hotel
	for _, current := range hotels {
		if current.HotelID == target.HotelID {
			hotel = current
			break
		}
	}
	if hotel == nil {
		return errors.NewAppError(
			errors.ErrCodeHotelNotFound,
			"hotel not found for reservation "+reservationID,
			errors.ErrHotelNotFound,
		)
	}

	target.Status = constants.ReservationStatusCancelled
	hotel.AvailableRooms += target.RoomCount
	if hotel.AvailableRooms > hotel.TotalRooms {
		hotel.AvailableRooms = hotel.TotalRooms
	}

	if err := s.saveHotels(hotels); err != nil {
		return err
	}
	return s.saveReservations(reservations)
}

// GetReservation trả về reservation kèm tên khách hàng đã resolve.
// Khách hàng đã bị xóa thì dùng placeholder thay vì fail.
func (s *HotelSystem) GetReservation(reservationID string) (*dto.ReservationDetail, error) {
	customers, err := s.loadCustomers()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, customer := range customers {
		names[customer.CustomerID] = customer.FullName
	}

	reservations, err := s.loadReservations()
	if err != nil {
		return nil, err
	}
	for _, reservation := range reservations {
		if reservation.ReservationID != reservationID {
			continue
		}
		name, ok := names[reservation.CustomerID]
		if !ok {
			name = customerNotFoundPlaceholder
		}
		return &dto.ReservationDetail{
			Reservation:  *reservation,
			CustomerName: name,
		}, nil
	}
	return nil, errors.NewAppError(errors.ErrCodeReservationNotFound, "reservation not found: "+reservationID, errors.ErrReservationNotFound)
}
