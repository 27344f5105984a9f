package testdata

// Pin_Plain is a pin as posted by the web client.
var Pin_Plain = `{
  "id": "web-0001",
  "latitude": 44.98896789550781,
  "longitude": -93.2554931640625,
  "description": "Minneapolis, MN",
  "service": "web",
  "userRole": "viewer",
  "timestamp": "2024-12-23T15:31:56.728Z"
}
`

// Pin_ChatBot is a pin as extracted from a chat message by the bot.
// Coordinates are strings; the id is numeric.
var Pin_ChatBot = `{
  "Id": 90210,
  "lat": "47.1787276",
  "lng": "-113.4730765",
  "locationName": "somewhere near Missoula",
  "Service": "twitch",
  "role": "subscriber",
  "time": "2024-12-23T15:01:41Z"
}
`

// Pin_Feature is a pin as exported from the history store, as GeoJSON.
var Pin_Feature = `{
  "type": "Feature",
  "geometry": {
    "type": "Point",
    "coordinates": [-0.1278, 51.5074]
  },
  "properties": {
    "UUID": "export-77",
    "Name": "London",
    "Service": "youtube",
    "UnixTime": 1734967916
  }
}
`
