package controllers

import "html/template"

// Admin pages are small server-rendered fragments; the templates live in
// code so the binary and the tests never have to locate template files.

const adminLayoutHead = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Admin Console</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccc; padding: 4px 8px; }
    nav a { margin-right: 1rem; }
  </style>
</head>
<body>
<nav>
  <a href="/admin">Dashboard</a>
  <a href="/admin/users">Users</a>
  <a href="/admin/books">Books</a>
  <a href="/admin/orders">Orders</a>
</nav>`

const adminDashboardHTML = adminLayoutHead + `
<h1>Dashboard</h1>
<ul>
  <li>Users: {{.Users}}</li>
  <li>Books: {{.Books}}</li>
  <li>Orders: {{.Orders}}</li>
</ul>
</body>
</html>`

const adminUsersHTML = adminLayoutHead + `
<h1>Users</h1>
<form method="post" action="/admin/users">
  <input name="student_id" placeholder="student id" required>
  <input name="name" placeholder="name" required>
  <input name="phone" placeholder="phone" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Create</button>
</form>
<table>
  <tr><th>Student ID</th><th>Name</th><th>Phone</th><th>Credit</th><th>Active</th><th></th></tr>
  {{range .Users}}
  <tr>
    <td>{{.StudentID}}</td>
    <td>{{.Name}}</td>
    <td>{{.Phone}}</td>
    <td>{{.CreditScore}}</td>
    <td>{{.IsActive}}</td>
    <td>
      <form method="post" action="/admin/users/{{.ID}}/toggle"><button>Toggle</button></form>
      <form method="post" action="/admin/users/{{.ID}}/delete"><button>Delete</button></form>
    </td>
  </tr>
  {{end}}
</table>
</body>
</html>`

const adminBooksHTML = adminLayoutHead + `
<h1>Books</h1>
<table>
  <tr><th>Title</th><th>Author</th><th>ISBN</th><th>Price</th><th>Status</th><th></th></tr>
  {{range .Books}}
  <tr>
    <td>{{.Title}}</td>
    <td>{{.Author}}</td>
    <td>{{.ISBN}}</td>
    <td>{{.SellingPrice}}</td>
    <td>{{.Status}}</td>
    <td>
      <form method="post" action="/admin/books/{{.ID}}/status">
        <select name="status">
          <option value="available">available</option>
          <option value="reserved">reserved</option>
          <option value="sold">sold</option>
          <option value="off_shelf">off_shelf</option>
        </select>
        <button>Set</button>
      </form>
      <form method="post" action="/admin/books/{{.ID}}/delete"><button>Delete</button></form>
    </td>
  </tr>
  {{end}}
</table>
</body>
</html>`

const adminOrdersHTML = adminLayoutHead + `
<h1>Orders</h1>
<table>
  <tr><th>Order #</th><th>Book</th><th>Total</th><th>Status</th><th>Payment</th><th></th></tr>
  {{range .Orders}}
  <tr>
    <td>{{.OrderNumber}}</td>
    <td>{{.Book.Title}}</td>
    <td>{{.TotalAmount}}</td>
    <td>{{.Status}}</td>
    <td>{{.PaymentStatus}}</td>
    <td>
      <form method="post" action="/admin/orders/{{.ID}}/status">
        <select name="status">
          <option value="pending">pending</option>
          <option value="confirmed">confirmed</option>
          <option value="paid">paid</option>
          <option value="shipping">shipping</option>
          <option value="completed">completed</option>
          <option value="cancelled">cancelled</option>
          <option value="refunded">refunded</option>
        </select>
        <button>Set</button>
      </form>
      <form method="post" action="/admin/orders/{{.ID}}/delete"><button>Delete</button></form>
    </td>
  </tr>
  {{end}}
</table>
</body>
</html>`

// AdminTemplates parses the admin console templates for gin's HTML renderer
func AdminTemplates() *template.Template {
	t := template.New("admin")
	template.Must(t.New("admin_dashboard.html").Parse(adminDashboardHTML))
	template.Must(t.New("admin_users.html").Parse(adminUsersHTML))
	template.Must(t.New("admin_books.html").Parse(adminBooksHTML))
	template.Must(t.New("admin_orders.html").Parse(adminOrdersHTML))
	return t
}
