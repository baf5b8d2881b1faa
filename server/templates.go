package server

const _formHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Travel Planner</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 24px auto; color: #333; }
h1 { text-align: center; color: #ff5733; }
p.subtitle { text-align: center; color: #555; }
fieldset { border: 1px solid #ddd; border-radius: 8px; margin-bottom: 16px; padding: 12px; }
label { display: block; margin: 8px 0 2px; font-weight: bold; }
input[type=text], input[type=date], input[type=number], select, textarea { width: 100%; padding: 6px; }
button { display: block; margin: 16px auto; padding: 10px 24px; font-size: 16px; background: #007bff; color: #fff; border: none; border-radius: 5px; cursor: pointer; }
</style>
</head>
<body>
<h1>AI-Powered Travel Planner</h1>
<p class="subtitle">Plan your dream trip with AI! Get personalized recommendations for flights, stays, and activities.</p>
<form method="post" action="/plan">
<fieldset>
<legend>Where are you headed?</legend>
<label for="source">Departure City (IATA Code)</label>
<input type="text" id="source" name="source" value="{{.Defaults.Origin}}">
<label for="destination">Destination (IATA Code)</label>
<input type="text" id="destination" name="destination" value="{{.Defaults.Destination}}">
</fieldset>
<fieldset>
<legend>Plan your adventure</legend>
<label for="num_days">Trip Duration (days)</label>
<input type="number" id="num_days" name="num_days" min="1" max="14" value="{{.Defaults.NumDays}}">
<label for="travel_theme">Travel Theme</label>
<select id="travel_theme" name="travel_theme">
{{range .Themes}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
<label for="activities">What activities do you enjoy?</label>
<textarea id="activities" name="activities" rows="3">{{.Defaults.Activities}}</textarea>
<label for="departure_date">Departure Date</label>
<input type="date" id="departure_date" name="departure_date">
<label for="return_date">Return Date</label>
<input type="date" id="return_date" name="return_date">
</fieldset>
<fieldset>
<legend>Personalize your trip</legend>
<label for="budget">Budget Preference</label>
<select id="budget" name="budget">
{{range .Budgets}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
<label for="flight_class">Flight Class</label>
<select id="flight_class" name="flight_class">
{{range .FlightClass}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
<label for="hotel_rating">Preferred Hotel Rating</label>
<select id="hotel_rating" name="hotel_rating">
{{range .HotelRatings}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
<label><input type="checkbox" name="visa_required" value="1"> Check Visa Requirements</label>
<label><input type="checkbox" name="travel_insurance" value="1"> Get Travel Insurance</label>
</fieldset>
<button type="submit">Generate Travel Plan</button>
</form>
</body>
</html>
`

const _resultsHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Your Trip to {{.Request.Destination}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 24px auto; color: #333; }
h1 { color: #ff5733; }
.warning { background: #fff3cd; border: 1px solid #ffc107; border-radius: 6px; padding: 8px 12px; margin-bottom: 8px; }
.cards { display: flex; gap: 16px; flex-wrap: wrap; }
.card { border: 2px solid #ddd; border-radius: 10px; padding: 15px; text-align: center; background: #f9f9f9; flex: 1; min-width: 240px; }
.card img { max-width: 100px; }
.card .price { color: #008000; font-size: 24px; font-weight: bold; }
.card a { display: inline-block; padding: 10px 20px; font-weight: bold; color: #fff; background: #007bff; text-decoration: none; border-radius: 5px; margin-top: 10px; }
.card a.disabled { background: #aaa; pointer-events: none; }
section { margin-top: 32px; }
</style>
</head>
<body>
<h1>Your {{.Request.Theme}} to {{.Request.Destination}}</h1>
{{range .Warnings}}<div class="warning">{{.}}</div>
{{end}}
<section>
<h2>Cheapest Flight Options</h2>
{{if .Flights}}
<div class="cards">
{{range .Flights}}
<div class="card">
{{if .AirlineLogo}}<img src="{{.AirlineLogo}}" alt="Airline Logo">{{end}}
<h3>{{.Airline}}</h3>
<p><strong>Departure:</strong> {{.Departure}}</p>
<p><strong>Arrival:</strong> {{.Arrival}}</p>
<p><strong>Duration:</strong> {{.DurationMin}} min</p>
<p class="price">{{.Price}}</p>
{{if .HasBooking}}<a href="{{.BookingURL}}" target="_blank" rel="noopener">Book Now</a>
{{else}}<a href="#" class="disabled">No booking link available</a>{{end}}
</div>
{{end}}
</div>
{{else}}
<p>No flight data available.</p>
{{end}}
</section>
<section>
<h2>Destination Research</h2>
{{.Research}}
</section>
<section>
<h2>Hotels &amp; Restaurants</h2>
{{.Lodging}}
</section>
<section>
<h2>Your Personalized Itinerary</h2>
{{.Itinerary}}
</section>
<p><a href="/">Plan another trip</a></p>
</body>
</html>
`
