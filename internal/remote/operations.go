package remote

// Operation is a named query or mutation with a fixed variable schema. Field
// names the top-level entry of the response data.
type Operation struct {
	Name  string
	Field string
	Query string
}

var (
	OpLogin = Operation{
		Name:  "Login",
		Field: "login",
		Query: `query Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    userId
    token
    tokenExpiration
  }
}`,
	}

	OpCreateUser = Operation{
		Name:  "CreateUser",
		Field: "createUser",
		Query: `mutation CreateUser($email: String!, $password: String!) {
  createUser(userInput: {email: $email, password: $password}) {
    id
    email
  }
}`,
	}

	OpEvents = Operation{
		Name:  "Events",
		Field: "events",
		Query: `query {
  events {
    id
    title
    description
    date
    price
    creator {
      id
      email
    }
  }
}`,
	}

	OpCreateEvent = Operation{
		Name:  "CreateEvent",
		Field: "createEvent",
		Query: `mutation CreateEvent($title: String!, $description: String!, $price: Float!, $date: String!) {
  createEvent(eventInput: {title: $title, description: $description, price: $price, date: $date}) {
    id
    title
    description
    date
    price
  }
}`,
	}

	OpBookings = Operation{
		Name:  "Bookings",
		Field: "bookings",
		Query: `query {
  bookings {
    id
    createdAt
    event {
      id
      title
      date
      price
    }
  }
}`,
	}

	OpBookEvent = Operation{
		Name:  "BookEvent",
		Field: "bookEvent",
		Query: `mutation BookEvent($id: ID!) {
  bookEvent(eventId: $id) {
    id
    createdAt
    updatedAt
  }
}`,
	}

	OpCancelBooking = Operation{
		Name:  "CancelBooking",
		Field: "cancelBooking",
		Query: `mutation CancelBooking($id: ID!) {
  cancelBooking(bookingId: $id) {
    id
    title
  }
}`,
	}
)
